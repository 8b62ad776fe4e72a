package mcp

import (
	"errors"
	"fmt"

	mssql "github.com/denisenkom/go-mssqldb"
)

// Configuration errors (fatal at startup)
var (
	ErrDatabaseRequired    = errors.New("MSSQL_DATABASE is required")
	ErrCredentialsRequired = errors.New("MSSQL_USER and MSSQL_PASSWORD are required for SQL Authentication")
	ErrInvalidAuthMode     = errors.New("invalid authentication mode - use: sql, windows, or entra")
	ErrAuthModeUnsupported = errors.New("Entra ID authentication is not supported")
	ErrInvalidPort         = errors.New("invalid port")
	ErrInvalidQueryTimeout = errors.New("invalid query timeout")
)

// Connection errors
var (
	ErrConnectionFailed = errors.New("failed to connect to database")
)

// Argument errors
var (
	ErrInvalidArguments  = errors.New("invalid arguments")
	ErrQueryRequired     = errors.New("query is required")
	ErrInvalidTableName  = errors.New("invalid table name")
	ErrInvalidSchemaName = errors.New("invalid schema name")
	ErrInvalidResource   = errors.New("invalid resource URI")
)

// Query errors
var (
	ErrQueryFailed       = errors.New("error executing query")
	ErrRetrievingColumns = errors.New("error retrieving columns")
	ErrReadingRow        = errors.New("error reading row")
	ErrReadingResults    = errors.New("error reading results")
	ErrListingTables     = errors.New("error listing tables")
	ErrDescribingTable   = errors.New("error describing table")
	ErrReadingTable      = errors.New("error reading table data")
	ErrSerializingJSON   = errors.New("error serializing JSON")
)

// classifyDBError separates server-reported query errors from driver or
// network failures. The mssql driver only produces mssql.Error once the
// statement reached the engine; everything else is a connection problem.
func classifyDBError(err error) error {
	var sqlErr mssql.Error
	if errors.As(err, &sqlErr) {
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
}
