package rules

import (
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/types"
)

// SubqueryOptimizationDetector flags IN subqueries that usually rewrite to
// joins or EXISTS.
type SubqueryOptimizationDetector struct{}

// Name returns the detector name.
func (*SubqueryOptimizationDetector) Name() string {
	return "subquery_optimization"
}

// Detect runs two independent checks; both may fire on the same query.
func (*SubqueryOptimizationDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	var findings []*types.Finding
	q := ctx.Flattened

	if strings.Contains(q, "IN (") && strings.Contains(q, "SELECT") {
		findings = append(findings, &types.Finding{
			Category:    types.CategoryJoin,
			Severity:    types.SeverityMedium,
			Title:       "Consider replacing subquery with JOIN",
			Description: "Subqueries can often be optimized by converting to JOINs",
			Suggestion:  "Replace IN subqueries with INNER JOINs when possible",
			Example: `-- Instead of:
SELECT * FROM users WHERE id IN (SELECT user_id FROM orders);
-- Use:
SELECT DISTINCT u.* FROM users u INNER JOIN orders o ON u.id = o.user_id;`,
		})
	}

	if strings.Contains(q, " IN (") {
		findings = append(findings, &types.Finding{
			Category:    types.CategoryPerformance,
			Severity:    types.SeverityLow,
			Title:       "Consider EXISTS instead of IN",
			Description: "EXISTS can be faster than IN for subqueries",
			Suggestion:  "Use EXISTS when checking for existence rather than specific values",
			Example: `-- Instead of:
WHERE id IN (SELECT user_id FROM orders)
-- Consider:
WHERE EXISTS (SELECT 1 FROM orders WHERE user_id = users.id)`,
		})
	}

	return findings, nil
}
