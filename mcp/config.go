package mcp

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AuthMode selects how the connection authenticates against SQL Server.
type AuthMode string

// Config is the connection descriptor. It is assembled once at startup from
// the MSSQL_* environment variables and never mutated afterwards; every
// component receives it explicitly instead of reading the environment ad hoc.
type Config struct {
	Server   string
	Database string
	User     string
	Password string
	Port     int
	Encrypt  bool
	AuthMode AuthMode

	// Command is the registered name of the SQL execution tool.
	Command string

	QueryTimeout time.Duration
}

// LoadConfig reads the connection descriptor from the environment.
// Missing required settings are a fatal startup condition, reported before
// any connection attempt.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server:       getEnvOrDefault("MSSQL_SERVER", DefaultServer),
		Database:     os.Getenv("MSSQL_DATABASE"),
		User:         os.Getenv("MSSQL_USER"),
		Password:     os.Getenv("MSSQL_PASSWORD"),
		Command:      getEnvOrDefault("MSSQL_COMMAND", DefaultCommand),
		QueryTimeout: DefaultQueryTimeout,
	}

	if cfg.Database == "" {
		return nil, ErrDatabaseRequired
	}

	port, err := getEnvInt("MSSQL_PORT", DefaultPort)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPort, os.Getenv("MSSQL_PORT"))
	}
	cfg.Port = port

	seconds, err := getEnvInt("MSSQL_QUERY_TIMEOUT", 0)
	if err != nil || seconds < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQueryTimeout, os.Getenv("MSSQL_QUERY_TIMEOUT"))
	}
	if seconds > 0 {
		cfg.QueryTimeout = time.Duration(seconds) * time.Second
	}

	mode, err := resolveAuthMode()
	if err != nil {
		return nil, err
	}
	cfg.AuthMode = mode

	if cfg.AuthMode == AuthModeSQL && (cfg.User == "" || cfg.Password == "") {
		return nil, ErrCredentialsRequired
	}

	// Azure SQL requires encryption, so it defaults on there; everywhere else
	// the flag defaults off.
	cfg.Encrypt = getEnvBool("MSSQL_ENCRYPT", cfg.IsAzure())

	return cfg, nil
}

// resolveAuthMode derives the authentication mode from MSSQL_AUTH, falling
// back to the MSSQL_WINDOWS_AUTH toggle the source used.
func resolveAuthMode() (AuthMode, error) {
	if raw := os.Getenv("MSSQL_AUTH"); raw != "" {
		switch AuthMode(strings.ToLower(raw)) {
		case AuthModeSQL:
			return AuthModeSQL, nil
		case AuthModeWindows:
			return AuthModeWindows, nil
		case AuthModeEntra:
			// Deliberately rejected rather than guessing its shape.
			return "", ErrAuthModeUnsupported
		default:
			return "", fmt.Errorf("%w: %s", ErrInvalidAuthMode, raw)
		}
	}
	if getEnvBool("MSSQL_WINDOWS_AUTH", false) {
		return AuthModeWindows, nil
	}
	return AuthModeSQL, nil
}

// IsLocalDB reports whether the server points at a LocalDB instance,
// e.g. (localdb)\MSSQLLocalDB.
func (c *Config) IsLocalDB() bool {
	return strings.HasPrefix(c.Server, `(localdb)\`)
}

// IsAzure reports whether the server is an Azure SQL host.
func (c *Config) IsAzure() bool {
	return strings.Contains(c.Server, ".database.windows.net")
}

// Describe returns a log-safe summary of the descriptor, without the password.
func (c *Config) Describe() string {
	server := c.Server
	if c.Port != DefaultPort && !c.IsLocalDB() {
		server = fmt.Sprintf("%s:%d", c.Server, c.Port)
	}
	user := c.User
	if c.AuthMode == AuthModeWindows {
		user = "Windows Auth"
	}
	return fmt.Sprintf("%s/%s as %s", server, c.Database, user)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.EqualFold(value, "true")
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}
