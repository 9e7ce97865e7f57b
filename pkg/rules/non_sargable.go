package rules

import (
	"regexp"

	"github.com/nsxbet/sql-advisor/pkg/types"
)

var (
	whereFunctionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`WHERE\s+\w*\(\s*\w+\s*\)`),
		regexp.MustCompile(`WHERE\s+UPPER\s*\(`),
		regexp.MustCompile(`WHERE\s+LOWER\s*\(`),
		regexp.MustCompile(`WHERE\s+SUBSTRING\s*\(`),
		regexp.MustCompile(`WHERE\s+LEFT\s*\(`),
		regexp.MustCompile(`WHERE\s+RIGHT\s*\(`),
	}
	leadingWildcardLike = regexp.MustCompile(`LIKE\s+['"]%`)
)

// NonSargableDetector flags predicate shapes an index cannot evaluate
// directly.
type NonSargableDetector struct{}

// Name returns the detector name.
func (*NonSargableDetector) Name() string {
	return "non_sargable"
}

// Detect runs two independent checks: functions applied to columns right
// after WHERE, and LIKE patterns with a leading wildcard. Both may fire on
// the same query; each emits at most once.
func (*NonSargableDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	var findings []*types.Finding

	for _, pattern := range whereFunctionPatterns {
		if pattern.MatchString(ctx.Flattened) {
			findings = append(findings, &types.Finding{
				Category:    types.CategoryIndex,
				Severity:    types.SeverityHigh,
				Title:       "Non-SARGable condition detected",
				Description: "Functions on columns in WHERE clauses prevent index usage",
				Suggestion:  "Avoid functions on columns in WHERE clauses or create computed columns",
				Example:     "WHERE name = 'JOHN' -- Instead of WHERE UPPER(name) = 'JOHN'",
			})
			break
		}
	}

	if leadingWildcardLike.MatchString(ctx.Flattened) {
		findings = append(findings, &types.Finding{
			Category:    types.CategoryIndex,
			Severity:    types.SeverityMedium,
			Title:       "Leading wildcard in LIKE",
			Description: "LIKE patterns starting with % cannot use indexes effectively",
			Suggestion:  "Avoid leading wildcards or consider full-text search",
			Example:     "WHERE name LIKE 'John%' -- Instead of WHERE name LIKE '%John%'",
		})
	}

	return findings, nil
}
