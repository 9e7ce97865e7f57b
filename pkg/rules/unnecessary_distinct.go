package rules

import (
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/types"
)

// UnnecessaryDistinctDetector flags DISTINCT in queries that cannot produce
// join-induced duplicates.
type UnnecessaryDistinctDetector struct{}

// Name returns the detector name.
func (*UnnecessaryDistinctDetector) Name() string {
	return "unnecessary_distinct"
}

// Detect emits a low performance finding for SELECT DISTINCT without a JOIN.
func (*UnnecessaryDistinctDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	q := ctx.Flattened
	if !strings.Contains(q, "SELECT DISTINCT") || strings.Contains(q, "JOIN") {
		return nil, nil
	}
	return []*types.Finding{{
		Category:    types.CategoryPerformance,
		Severity:    types.SeverityLow,
		Title:       "Review DISTINCT usage",
		Description: "DISTINCT can be expensive and may not be necessary",
		Suggestion:  "Ensure DISTINCT is actually needed or consider using GROUP BY",
		Example:     "-- Only use DISTINCT when you actually have duplicates to remove",
	}}, nil
}
