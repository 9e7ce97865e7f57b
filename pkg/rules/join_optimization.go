package rules

import (
	"regexp"
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/types"
)

var implicitJoinPattern = regexp.MustCompile(`FROM\s+\w+\s*,\s*\w+`)

// JoinOptimizationDetector flags implicit comma joins and JOINs that are
// missing their ON conditions.
type JoinOptimizationDetector struct{}

// Name returns the detector name.
func (*JoinOptimizationDetector) Name() string {
	return "join_optimization"
}

// Detect runs two independent checks. The missing-condition check compares
// JOIN and " ON " occurrence counts, so it stays quiet for CROSS JOIN.
func (*JoinOptimizationDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	var findings []*types.Finding
	q := ctx.Flattened

	if implicitJoinPattern.MatchString(q) {
		findings = append(findings, &types.Finding{
			Category:    types.CategoryJoin,
			Severity:    types.SeverityMedium,
			Title:       "Use explicit JOINs",
			Description: "Implicit joins (comma-separated) are less clear and harder to optimize",
			Suggestion:  "Replace implicit joins with explicit INNER/LEFT/RIGHT JOINs",
			Example: `-- Instead of:
SELECT * FROM users u, orders o WHERE u.id = o.user_id;
-- Use:
SELECT * FROM users u INNER JOIN orders o ON u.id = o.user_id;`,
		})
	}

	joinCount := strings.Count(q, "JOIN")
	onCount := strings.Count(q, " ON ")
	if joinCount > onCount && !strings.Contains(q, "CROSS JOIN") {
		findings = append(findings, &types.Finding{
			Category:    types.CategoryJoin,
			Severity:    types.SeverityHigh,
			Title:       "Missing JOIN conditions",
			Description: "JOINs without proper ON conditions can create Cartesian products",
			Suggestion:  "Ensure all JOINs have appropriate ON conditions",
			Example:     "INNER JOIN orders o ON u.id = o.user_id",
		})
	}

	return findings, nil
}
