package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const tableResourcePrefix = "mssql://"

func (s *MssqlMCPServer) resourceTableData() (mcp.ResourceTemplate, server.ResourceTemplateHandlerFunc) {
	return mcp.NewResourceTemplate(
		tableResourcePrefix+"{table}/data",
		"Table data",
		mcp.WithTemplateDescription(fmt.Sprintf("First %d rows of a table, as comma-separated text", ResourceRowLimit)),
		mcp.WithTemplateMIMEType("text/plain"),
	), s.handleReadTableData
}

func (s *MssqlMCPServer) handleReadTableData(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI

	table, ok := strings.CutPrefix(uri, tableResourcePrefix)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidResource, uri)
	}
	table, _, _ = strings.Cut(table, "/")

	// The table name lands in the statement text, so it is validated and
	// bracket-quoted instead of bound.
	quoted, err := quoteTableName(table)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, ShortQueryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT TOP %d * FROM %s", ResourceRowLimit, quoted))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadingTable, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrievingColumns, err)
	}

	var text strings.Builder
	text.WriteString(strings.Join(columns, ","))
	text.WriteString("\n")

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err = rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadingRow, err)
		}

		cells := make([]string, len(columns))
		for i := range values {
			if v := formatValue(values[i]); v != nil {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}
		text.WriteString(strings.Join(cells, ","))
		text.WriteString("\n")
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadingResults, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     text.String(),
		},
	}, nil
}
