package mcp

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var reTableName = regexp.MustCompile(`^[a-zA-Z0-9_]+(\.[a-zA-Z0-9_]+)?$`)

// Validating SQL identifiers to prevent SQL injection.
func isValidIdentifier(name string) bool {
	match, _ := regexp.MatchString(`^[a-zA-Z0-9_#@$]+$`, name)
	return match && len(name) > 0 && len(name) < 128
}

// quoteTableName validates a bare or schema-qualified table name and returns
// its bracket-quoted form ([schema].[table]).
func quoteTableName(name string) (string, error) {
	if !reTableName.MatchString(name) {
		return "", fmt.Errorf("%w: %s", ErrInvalidTableName, name)
	}
	if schema, table, ok := strings.Cut(name, "."); ok {
		return fmt.Sprintf("[%s].[%s]", schema, table), nil
	}
	return fmt.Sprintf("[%s]", name), nil
}

// getArgs extracts the argument map from a tool call payload
func getArgs(arguments interface{}) (map[string]interface{}, bool) {
	args, ok := arguments.(map[string]interface{})
	return args, ok
}

// Helper for converting string arguments safely
func getStringArg(args map[string]interface{}, key string) (string, bool) {
	val, ok := args[key].(string)
	return val, ok
}

// Helper for converting integer arguments safely. Numbers arrive as float64
// from JSON payloads and as int from in-process callers.
func getIntArg(args map[string]interface{}, key string, defaultVal int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return defaultVal
}

// formatValue converts database values to JSON-safe formats
func formatValue(val interface{}) interface{} {
	switch v := val.(type) {
	case []byte:
		if len(v) > 1000 {
			return fmt.Sprintf("<binary data: %d bytes>", len(v))
		}
		if utf8.Valid(v) {
			return string(v)
		}
		return fmt.Sprintf("<binary data: %d bytes>", len(v))
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case nil:
		return nil
	default:
		return v
	}
}
