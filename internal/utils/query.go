// Package utils holds small helpers shared by the HTTP layer, the services
// and the CLI: query parameter parsing and calendar arithmetic.
package utils

import (
	"strconv"
	"strings"
)

// AtoiDefault parses s as a base-10 int, ignoring surrounding whitespace.
// Empty or malformed input yields def.
func AtoiDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// LimitParam parses a list limit from a query value. Missing or invalid
// values yield def; results are clamped into [1, limit].
func LimitParam(s string, def, limit int) int {
	n := AtoiDefault(s, def)
	if n < 1 {
		n = 1
	}
	return min(n, limit)
}
