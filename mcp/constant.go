package mcp

import "time"

// Connection defaults
const (
	DefaultServer = "localhost"
	DefaultPort   = 1433
)

// The source behavior is one connection, one statement at a time; the
// database/sql pool is pinned down to that.
const (
	DBMaxOpenConns    = 1
	DBMaxIdleConns    = 1
	DBConnMaxLifetime = 5 * time.Minute
	DBPingTimeout     = 5 * time.Second
)

// Query timeout constants
const (
	DefaultQueryTimeout = 30 * time.Second
	ShortQueryTimeout   = 10 * time.Second
)

// Result limits
const (
	DefaultMaxRows   = 100
	MaxRowsLimit     = 10000
	ResourceRowLimit = 100
)

// DefaultCommand is the name the SQL execution tool registers under unless
// MSSQL_COMMAND overrides it.
const DefaultCommand = "execute_sql"

// Authentication modes
const (
	AuthModeSQL     AuthMode = "sql"
	AuthModeWindows AuthMode = "windows"
	AuthModeEntra   AuthMode = "entra"
)
