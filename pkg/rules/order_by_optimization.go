package rules

import (
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/types"
)

// OrderByOptimizationDetector flags full-result-set sorts.
type OrderByOptimizationDetector struct{}

// Name returns the detector name.
func (*OrderByOptimizationDetector) Name() string {
	return "order_by_optimization"
}

// Detect emits a low performance finding for ORDER BY without LIMIT.
func (*OrderByOptimizationDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	q := ctx.Flattened
	if !strings.Contains(q, "ORDER BY") || strings.Contains(q, "LIMIT") {
		return nil, nil
	}
	return []*types.Finding{{
		Category:    types.CategoryPerformance,
		Severity:    types.SeverityLow,
		Title:       "ORDER BY without LIMIT",
		Description: "Sorting entire result sets can be expensive",
		Suggestion:  "Consider adding LIMIT when using ORDER BY if you don't need all sorted results",
		Example:     "SELECT * FROM users ORDER BY created_at DESC LIMIT 50;",
	}}, nil
}
