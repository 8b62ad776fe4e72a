package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *MssqlMCPServer) toolExecuteSQL() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        s.config.Command,
		Description: "Execute an SQL statement on the SQL Server. SELECT statements return rows and columns; INSERT, UPDATE and DELETE return the affected row count. Statements run with the privileges of the configured database user.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "SQL statement to execute",
				},
				"params": map[string]interface{}{
					"type":        "array",
					"description": "Bound parameter values, referenced as @p1, @p2, ... in the statement (optional)",
				},
				"max_rows": map[string]interface{}{
					"type":        "number",
					"description": fmt.Sprintf("Maximum number of rows to return (default: %d, max: %d)", DefaultMaxRows, MaxRowsLimit),
				},
			},
			Required: []string{"query"},
		},
	}, s.handleExecuteSQL
}

func (s *MssqlMCPServer) handleExecuteSQL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	query, ok := getStringArg(args, "query")
	if !ok || query == "" {
		return mcp.NewToolResultError(ErrQueryRequired.Error()), nil
	}

	var params []interface{}
	if raw, ok := args["params"].([]interface{}); ok {
		params = raw
	}

	maxRows := getIntArg(args, "max_rows", DefaultMaxRows)
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	if maxRows > MaxRowsLimit {
		maxRows = MaxRowsLimit
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	if isSelectQuery(query) {
		return s.runQuery(ctx, query, params, maxRows)
	}
	return s.runExec(ctx, query, params)
}

// runQuery executes a result-set statement and returns rows plus columns.
func (s *MssqlMCPServer) runQuery(ctx context.Context, query string, params []interface{}, maxRows int) (*mcp.CallToolResult, error) {
	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		log.Printf("Error in query: %v\nQuery: %s\n", err, query)
		return mcp.NewToolResultError(classifyDBError(err).Error()), nil
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return mcp.NewToolResultError(ErrRetrievingColumns.Error()), nil
	}

	var results []map[string]interface{}
	truncated := false

	for rows.Next() {
		// A full page only counts as truncated if another row was waiting
		if len(results) == maxRows {
			truncated = true
			break
		}

		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err = rows.Scan(valuePtrs...); err != nil {
			return mcp.NewToolResultError(ErrReadingRow.Error()), nil
		}

		row := make(map[string]interface{})
		for i, col := range columns {
			row[col] = formatValue(values[i])
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error during iteration: %v\n", err)
		return mcp.NewToolResultError(ErrReadingResults.Error()), nil
	}

	response := map[string]interface{}{
		"columns":   columns,
		"rows":      results,
		"row_count": len(results),
		"truncated": truncated,
	}

	return jsonToolResult(response)
}

// runExec executes a mutating statement and returns the affected row count.
func (s *MssqlMCPServer) runExec(ctx context.Context, query string, params []interface{}) (*mcp.CallToolResult, error) {
	result, err := s.db.ExecContext(ctx, query, params...)
	if err != nil {
		log.Printf("Error in statement: %v\nQuery: %s\n", err, query)
		return mcp.NewToolResultError(classifyDBError(err).Error()), nil
	}

	affected, err := result.RowsAffected()
	if err != nil {
		affected = -1
	}

	response := map[string]interface{}{
		"rows_affected": affected,
		"message":       fmt.Sprintf("Query executed successfully. Rows affected: %d", affected),
	}

	return jsonToolResult(response)
}

func jsonToolResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(ErrSerializingJSON.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
