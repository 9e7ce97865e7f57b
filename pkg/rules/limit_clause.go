package rules

import (
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/types"
)

// LimitClauseDetector flags SELECTs that bound their result set in no way.
type LimitClauseDetector struct{}

// Name returns the detector name.
func (*LimitClauseDetector) Name() string {
	return "limit_clause"
}

// Detect emits a medium performance finding when SELECT appears without
// LIMIT, TOP or WHERE.
func (*LimitClauseDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	q := ctx.Flattened
	if !strings.Contains(q, "SELECT") ||
		strings.Contains(q, "LIMIT") ||
		strings.Contains(q, "TOP") ||
		strings.Contains(q, "WHERE") {
		return nil, nil
	}
	return []*types.Finding{{
		Category:    types.CategoryPerformance,
		Severity:    types.SeverityMedium,
		Title:       "Consider adding LIMIT clause",
		Description: "Queries without LIMIT can return large result sets",
		Suggestion:  "Add LIMIT clause when you don't need all results",
		Example:     "SELECT * FROM users LIMIT 100;",
	}}, nil
}
