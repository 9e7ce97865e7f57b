package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/types"
)

var (
	whereClausePattern  = regexp.MustCompile(`(?s)WHERE\s+(.*?)(?:\s+ORDER\s+BY|\s+GROUP\s+BY|\s+HAVING|\s+LIMIT|$)`)
	comparedColumn      = regexp.MustCompile(`\b(\w+)\s*[=<>!]`)
	orderByColumnsMatch = regexp.MustCompile(`ORDER\s+BY\s+([\w,\s]+)`)
)

// IndexSuggestionsDetector proposes indexes for filtered and sorted columns.
type IndexSuggestionsDetector struct{}

// Name returns the detector name.
func (*IndexSuggestionsDetector) Name() string {
	return "index_suggestions"
}

// Detect extracts the WHERE clause and the ORDER BY column list and emits
// one index suggestion for each that is non-empty.
func (*IndexSuggestionsDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	var findings []*types.Finding
	q := ctx.Flattened

	if m := whereClausePattern.FindStringSubmatch(q); m != nil {
		columns := dedupe(comparedColumn.FindAllStringSubmatch(m[1], -1))
		if len(columns) > 0 {
			findings = append(findings, &types.Finding{
				Category:    types.CategoryIndex,
				Severity:    types.SeverityMedium,
				Title:       "Consider adding indexes",
				Description: fmt.Sprintf("Columns used in WHERE clause could benefit from indexes: %s", strings.Join(columns, ", ")),
				Suggestion:  "Create indexes on frequently queried columns",
				Example:     fmt.Sprintf("CREATE INDEX idx_column_name ON table_name (%s);", strings.Join(firstN(columns, 3), ", ")),
			})
		}
	}

	if m := orderByColumnsMatch.FindStringSubmatch(q); m != nil {
		var columns []string
		for _, col := range strings.Split(m[1], ",") {
			columns = append(columns, strings.TrimSpace(col))
		}
		findings = append(findings, &types.Finding{
			Category:    types.CategoryIndex,
			Severity:    types.SeverityLow,
			Title:       "Consider index for ORDER BY",
			Description: "ORDER BY operations can benefit from indexes",
			Suggestion:  "Create an index on ORDER BY columns for better sorting performance",
			Example:     fmt.Sprintf("CREATE INDEX idx_sort ON table_name (%s);", strings.Join(firstN(columns, 2), ", ")),
		})
	}

	return findings, nil
}

// dedupe keeps the first occurrence of each captured column, preserving
// input order so repeated analyses produce identical reports.
func dedupe(matches [][]string) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, m := range matches {
		col := m[1]
		if !seen[col] {
			seen[col] = true
			columns = append(columns, col)
		}
	}
	return columns
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
