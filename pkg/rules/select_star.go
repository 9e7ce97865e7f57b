package rules

import (
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/types"
)

// SelectStarDetector flags queries that select every column.
type SelectStarDetector struct{}

// Name returns the detector name.
func (*SelectStarDetector) Name() string {
	return "select_star"
}

// Detect emits a medium performance finding on a literal SELECT *.
func (*SelectStarDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	if !strings.Contains(ctx.Flattened, "SELECT *") && !strings.Contains(ctx.Flattened, "SELECT\n*") {
		return nil, nil
	}
	return []*types.Finding{{
		Category:    types.CategoryPerformance,
		Severity:    types.SeverityMedium,
		Title:       "Avoid SELECT *",
		Description: "Using SELECT * retrieves all columns, which can impact performance",
		Suggestion:  "Specify only the columns you need in the SELECT clause",
		Example:     "SELECT id, name, email FROM users; -- Instead of SELECT * FROM users;",
	}}, nil
}
