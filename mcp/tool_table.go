package mcp

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const listTablesQuery = `
	SELECT TABLE_NAME
	FROM INFORMATION_SCHEMA.TABLES
	WHERE TABLE_TYPE = 'BASE TABLE'`

const describeTableQuery = `
	SELECT
		COLUMN_NAME,
		DATA_TYPE,
		IS_NULLABLE,
		COLUMN_DEFAULT,
		CHARACTER_MAXIMUM_LENGTH
	FROM INFORMATION_SCHEMA.COLUMNS
	WHERE TABLE_SCHEMA = @p1 AND TABLE_NAME = @p2
	ORDER BY ORDINAL_POSITION`

func (s *MssqlMCPServer) toolListTables() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "list_tables",
		Description: "List the user tables of the configured database",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"schema": map[string]interface{}{
					"type":        "string",
					"description": "Restrict the listing to one schema (optional)",
				},
			},
		},
	}, s.handleListTables
}

func (s *MssqlMCPServer) handleListTables(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := getArgs(request.Params.Arguments)

	query := listTablesQuery
	var queryArgs []interface{}

	if schema, ok := getStringArg(args, "schema"); ok && schema != "" {
		if !isValidIdentifier(schema) {
			return mcp.NewToolResultError(ErrInvalidSchemaName.Error()), nil
		}
		query += " AND TABLE_SCHEMA = @p1"
		queryArgs = append(queryArgs, schema)
	}
	// Stable order so repeated calls agree
	query += " ORDER BY TABLE_SCHEMA, TABLE_NAME"

	ctx, cancel := context.WithTimeout(ctx, ShortQueryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Errorf("%w: %v", ErrListingTables, err).Error()), nil
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return mcp.NewToolResultError(ErrReadingRow.Error()), nil
		}
		tables = append(tables, name)
	}
	if err = rows.Err(); err != nil {
		return mcp.NewToolResultError(ErrReadingResults.Error()), nil
	}

	response := map[string]interface{}{
		"database": s.config.Database,
		"tables":   tables,
		"count":    len(tables),
	}

	return jsonToolResult(response)
}

func (s *MssqlMCPServer) toolDescribeTable() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "describe_table",
		Description: "Returns the structure of a table (columns, types, nullability, defaults)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"table_name": map[string]interface{}{
					"type":        "string",
					"description": "Table name",
				},
				"schema": map[string]interface{}{
					"type":        "string",
					"description": "Schema name (default: dbo)",
				},
			},
			Required: []string{"table_name"},
		},
	}, s.handleDescribeTable
}

func (s *MssqlMCPServer) handleDescribeTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	tableName, ok := getStringArg(args, "table_name")
	if !ok || !isValidIdentifier(tableName) {
		return mcp.NewToolResultError(ErrInvalidTableName.Error()), nil
	}

	schema := "dbo"
	if sc, ok := getStringArg(args, "schema"); ok && sc != "" {
		schema = sc
	}
	if !isValidIdentifier(schema) {
		return mcp.NewToolResultError(ErrInvalidSchemaName.Error()), nil
	}

	ctx, cancel := context.WithTimeout(ctx, ShortQueryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, describeTableQuery, schema, tableName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Errorf("%w: %v", ErrDescribingTable, err).Error()), nil
	}
	defer rows.Close()

	var columns []map[string]interface{}
	for rows.Next() {
		var (
			name, dataType, nullable string
			columnDefault            sql.NullString
			maxLength                sql.NullInt64
		)
		if err = rows.Scan(&name, &dataType, &nullable, &columnDefault, &maxLength); err != nil {
			return mcp.NewToolResultError(ErrReadingRow.Error()), nil
		}

		column := map[string]interface{}{
			"name":     name,
			"type":     dataType,
			"nullable": nullable == "YES",
		}
		if columnDefault.Valid {
			column["default"] = columnDefault.String
		}
		if maxLength.Valid {
			column["max_length"] = maxLength.Int64
		}
		columns = append(columns, column)
	}
	if err = rows.Err(); err != nil {
		return mcp.NewToolResultError(ErrReadingResults.Error()), nil
	}

	if len(columns) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("table not found: %s.%s", schema, tableName)), nil
	}

	response := map[string]interface{}{
		"schema":  schema,
		"table":   tableName,
		"columns": columns,
	}

	return jsonToolResult(response)
}
