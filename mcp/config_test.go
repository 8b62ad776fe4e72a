package mcp

import (
	"errors"
	"testing"
	"time"
)

var mssqlEnvKeys = []string{
	"MSSQL_SERVER", "MSSQL_DATABASE", "MSSQL_USER", "MSSQL_PASSWORD",
	"MSSQL_PORT", "MSSQL_ENCRYPT", "MSSQL_WINDOWS_AUTH", "MSSQL_AUTH",
	"MSSQL_COMMAND", "MSSQL_QUERY_TIMEOUT",
}

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, key := range mssqlEnvKeys {
		t.Setenv(key, "")
	}
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func TestLoadConfig_MissingDatabase(t *testing.T) {
	setEnv(t, map[string]string{
		"MSSQL_SERVER": "db.example.com",
		"MSSQL_USER":   "sa",
	})

	_, err := LoadConfig()
	if !errors.Is(err, ErrDatabaseRequired) {
		t.Fatalf("expected ErrDatabaseRequired, got: %v", err)
	}
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	setEnv(t, map[string]string{
		"MSSQL_DATABASE": "appdb",
		"MSSQL_USER":     "sa",
	})

	_, err := LoadConfig()
	if !errors.Is(err, ErrCredentialsRequired) {
		t.Fatalf("expected ErrCredentialsRequired, got: %v", err)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setEnv(t, map[string]string{
		"MSSQL_DATABASE": "appdb",
		"MSSQL_USER":     "sa",
		"MSSQL_PASSWORD": "secret",
	})

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server != "localhost" {
		t.Errorf("expected default server localhost, got %q", cfg.Server)
	}
	if cfg.Port != 1433 {
		t.Errorf("expected default port 1433, got %d", cfg.Port)
	}
	if cfg.AuthMode != AuthModeSQL {
		t.Errorf("expected sql auth, got %q", cfg.AuthMode)
	}
	if cfg.Encrypt {
		t.Error("expected encryption off by default")
	}
	if cfg.Command != DefaultCommand {
		t.Errorf("expected command %q, got %q", DefaultCommand, cfg.Command)
	}
	if cfg.QueryTimeout != 30*time.Second {
		t.Errorf("expected 30s query timeout, got %v", cfg.QueryTimeout)
	}
}

func TestLoadConfig_WindowsAuthNeedsNoCredentials(t *testing.T) {
	setEnv(t, map[string]string{
		"MSSQL_DATABASE":     "appdb",
		"MSSQL_WINDOWS_AUTH": "true",
	})

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AuthMode != AuthModeWindows {
		t.Errorf("expected windows auth, got %q", cfg.AuthMode)
	}
}

func TestLoadConfig_EntraUnsupported(t *testing.T) {
	setEnv(t, map[string]string{
		"MSSQL_DATABASE": "appdb",
		"MSSQL_AUTH":     "entra",
	})

	_, err := LoadConfig()
	if !errors.Is(err, ErrAuthModeUnsupported) {
		t.Fatalf("expected ErrAuthModeUnsupported, got: %v", err)
	}
}

func TestLoadConfig_UnknownAuthMode(t *testing.T) {
	setEnv(t, map[string]string{
		"MSSQL_DATABASE": "appdb",
		"MSSQL_AUTH":     "kerberos",
	})

	_, err := LoadConfig()
	if !errors.Is(err, ErrInvalidAuthMode) {
		t.Fatalf("expected ErrInvalidAuthMode, got: %v", err)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	setEnv(t, map[string]string{
		"MSSQL_DATABASE": "appdb",
		"MSSQL_USER":     "sa",
		"MSSQL_PASSWORD": "secret",
		"MSSQL_PORT":     "not-a-port",
	})

	_, err := LoadConfig()
	if !errors.Is(err, ErrInvalidPort) {
		t.Fatalf("expected ErrInvalidPort, got: %v", err)
	}
}

func TestLoadConfig_InvalidQueryTimeout(t *testing.T) {
	for _, value := range []string{"abc", "-5"} {
		setEnv(t, map[string]string{
			"MSSQL_DATABASE":      "appdb",
			"MSSQL_USER":          "sa",
			"MSSQL_PASSWORD":      "secret",
			"MSSQL_QUERY_TIMEOUT": value,
		})

		_, err := LoadConfig()
		if !errors.Is(err, ErrInvalidQueryTimeout) {
			t.Errorf("MSSQL_QUERY_TIMEOUT=%q: expected ErrInvalidQueryTimeout, got: %v", value, err)
		}
	}
}

func TestLoadConfig_AzureEncryptsByDefault(t *testing.T) {
	setEnv(t, map[string]string{
		"MSSQL_SERVER":   "myserver.database.windows.net",
		"MSSQL_DATABASE": "appdb",
		"MSSQL_USER":     "sa",
		"MSSQL_PASSWORD": "secret",
	})

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Encrypt {
		t.Error("expected encryption on by default for Azure hosts")
	}

	t.Setenv("MSSQL_ENCRYPT", "false")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Encrypt {
		t.Error("expected explicit MSSQL_ENCRYPT=false to win over the Azure default")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"MSSQL_DATABASE":      "appdb",
		"MSSQL_USER":          "sa",
		"MSSQL_PASSWORD":      "secret",
		"MSSQL_PORT":          "14330",
		"MSSQL_COMMAND":       "run_sql",
		"MSSQL_QUERY_TIMEOUT": "120",
	})

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 14330 {
		t.Errorf("expected port 14330, got %d", cfg.Port)
	}
	if cfg.Command != "run_sql" {
		t.Errorf("expected command run_sql, got %q", cfg.Command)
	}
	if cfg.QueryTimeout != 120*time.Second {
		t.Errorf("expected 120s query timeout, got %v", cfg.QueryTimeout)
	}
}

func TestDescribe_HidesPassword(t *testing.T) {
	cfg := &Config{
		Server:   "db.example.com",
		Database: "appdb",
		User:     "sa",
		Password: "hunter2",
		Port:     1434,
		AuthMode: AuthModeSQL,
	}

	got := cfg.Describe()
	if got != "db.example.com:1434/appdb as sa" {
		t.Errorf("unexpected description: %q", got)
	}

	cfg.AuthMode = AuthModeWindows
	if got := cfg.Describe(); got != "db.example.com:1434/appdb as Windows Auth" {
		t.Errorf("unexpected windows auth description: %q", got)
	}
}
