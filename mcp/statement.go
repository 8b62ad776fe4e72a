package mcp

import (
	"regexp"
	"strings"
)

var (
	reBlockComments = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reLineComments  = regexp.MustCompile(`--[^\n]*`)
)

// isSelectQuery reports whether the statement produces a result set, after
// stripping line and block comments. WITH counts as well: a CTE is a SELECT
// with a prelude.
func isSelectQuery(query string) bool {
	query = reBlockComments.ReplaceAllString(query, " ")
	query = reLineComments.ReplaceAllString(query, " ")

	fields := strings.Fields(query)
	if len(fields) == 0 {
		return false
	}

	first := strings.ToUpper(strings.TrimLeft(fields[0], "("))
	return first == "SELECT" || first == "WITH"
}
