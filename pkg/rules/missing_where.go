package rules

import (
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/types"
)

// MissingWhereDetector flags SELECT statements that scan whole tables.
type MissingWhereDetector struct{}

// Name returns the detector name.
func (*MissingWhereDetector) Name() string {
	return "missing_where"
}

// Detect emits a high performance finding when a SELECT has no WHERE, LIMIT
// or JOIN to bound its result set.
func (*MissingWhereDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	q := ctx.Flattened
	if !strings.Contains(q, "SELECT") ||
		strings.Contains(q, "WHERE") ||
		strings.Contains(q, "LIMIT") ||
		strings.Contains(q, "JOIN") {
		return nil, nil
	}
	return []*types.Finding{{
		Category:    types.CategoryPerformance,
		Severity:    types.SeverityHigh,
		Title:       "Missing WHERE clause",
		Description: "Queries without WHERE clauses scan entire tables",
		Suggestion:  "Add a WHERE clause to filter rows or use LIMIT for testing",
		Example:     "SELECT * FROM users WHERE status = 'active' LIMIT 100;",
	}}, nil
}
