package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return &Report{
		Query:   "SELECT * FROM users",
		Dialect: "mysql",
		Findings: []*Finding{
			{Category: CategoryPerformance, Severity: SeverityMedium, Title: "Avoid SELECT *"},
			{Category: CategoryPerformance, Severity: SeverityHigh, Title: "Missing WHERE clause"},
			{Category: CategoryIndex, Severity: SeverityLow, Title: "Consider index for ORDER BY"},
		},
		SyntaxIssues:    []string{},
		ComplexityScore: 12,
		Tips:            []string{"Use EXPLAIN"},
	}
}

func TestReport_Summarize(t *testing.T) {
	s := sampleReport().Summarize()
	assert.Equal(t, Summary{Total: 3, High: 1, Medium: 1, Low: 1}, s)
}

func TestReport_HasHighSeverity(t *testing.T) {
	assert.True(t, sampleReport().HasHighSeverity())

	r := &Report{Findings: []*Finding{{Severity: SeverityLow}}}
	assert.False(t, r.HasHighSeverity())
}

func TestReport_Filters(t *testing.T) {
	r := sampleReport()

	perf := r.FilterByCategory(CategoryPerformance)
	require.Len(t, perf, 2)
	assert.Equal(t, "Avoid SELECT *", perf[0].Title)

	high := r.FilterBySeverity(SeverityHigh)
	require.Len(t, high, 1)
	assert.Equal(t, "Missing WHERE clause", high[0].Title)

	assert.Empty(t, r.FilterByCategory(CategoryJoin))
}

func TestReport_String(t *testing.T) {
	assert.Equal(t,
		"Analysis: 3 findings (1 high, 1 medium, 1 low), 0 syntax issues, complexity 12",
		sampleReport().String())
}

func TestReport_HasFindingTitled(t *testing.T) {
	r := sampleReport()
	assert.True(t, r.HasFindingTitled("missing where"))
	assert.True(t, r.HasFindingTitled("SELECT *"))
	assert.False(t, r.HasFindingTitled("cartesian"))
}

func TestReport_JSONShape(t *testing.T) {
	data, err := json.Marshal(sampleReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Field names follow the HTTP API contract.
	for _, key := range []string{"query", "database_type", "suggestions", "syntax_issues", "complexity_score", "execution_plan_tips"} {
		assert.Contains(t, decoded, key)
	}

	suggestions := decoded["suggestions"].([]any)
	first := suggestions[0].(map[string]any)
	assert.Equal(t, "performance", first["type"])
}
