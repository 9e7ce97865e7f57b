package types

import (
	"fmt"
	"strings"
)

// Severity represents how strongly a finding should be acted on.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Category classifies what kind of optimization a finding addresses.
type Category string

const (
	CategoryPerformance      Category = "performance"
	CategoryIndex            Category = "index"
	CategoryJoin             Category = "join"
	CategoryDatabaseSpecific Category = "database_specific"
)

// Finding is a single optimization suggestion emitted by a detector.
//
// Findings are immutable once produced. The order of findings in a report
// follows detector evaluation order, not severity.
type Finding struct {
	Category    Category `json:"type"        yaml:"type"`
	Severity    Severity `json:"severity"    yaml:"severity"`
	Title       string   `json:"title"       yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Suggestion  string   `json:"suggestion"  yaml:"suggestion"`
	Example     string   `json:"example"     yaml:"example"`
}

// Report is the result of analyzing a single query.
//
// A report is created once per analysis call and never mutated afterwards.
// If parsing failed, SyntaxIssues carries the parse failure and Findings,
// ComplexityScore and Tips are all empty.
type Report struct {
	// Query is the original query text, unmodified.
	Query string `json:"query" yaml:"query"`

	// Dialect is the resolved dialect identifier the analysis ran with.
	Dialect string `json:"database_type" yaml:"database_type"`

	// Findings are the optimization suggestions in detector order.
	Findings []*Finding `json:"suggestions" yaml:"suggestions"`

	// SyntaxIssues are probable grammar or dialect-compatibility defects.
	SyntaxIssues []string `json:"syntax_issues" yaml:"syntax_issues"`

	// ComplexityScore is a bounded structural score in [0, 100].
	ComplexityScore int `json:"complexity_score" yaml:"complexity_score"`

	// Tips are human-readable execution-plan hints.
	Tips []string `json:"execution_plan_tips" yaml:"execution_plan_tips"`
}

// Summary provides aggregate counts of findings by severity.
type Summary struct {
	Total  int
	High   int
	Medium int
	Low    int
}

// Summarize computes aggregate statistics from the report's findings.
func (r *Report) Summarize() Summary {
	s := Summary{}
	for _, f := range r.Findings {
		s.Total++
		switch f.Severity {
		case SeverityHigh:
			s.High++
		case SeverityMedium:
			s.Medium++
		case SeverityLow:
			s.Low++
		}
	}
	return s
}

// HasHighSeverity returns true if any finding is high severity.
//
// This is useful for CI-style gating:
//
//	if report.HasHighSeverity() {
//	    os.Exit(1)
//	}
func (r *Report) HasHighSeverity() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityHigh {
			return true
		}
	}
	return false
}

// HasSyntaxIssues returns true if the validator flagged any issues.
func (r *Report) HasSyntaxIssues() bool {
	return len(r.SyntaxIssues) > 0
}

// FilterByCategory returns the findings with the given category, in order.
func (r *Report) FilterByCategory(c Category) []*Finding {
	filtered := make([]*Finding, 0)
	for _, f := range r.Findings {
		if f.Category == c {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// FilterBySeverity returns the findings with the given severity, in order.
func (r *Report) FilterBySeverity(s Severity) []*Finding {
	filtered := make([]*Finding, 0)
	for _, f := range r.Findings {
		if f.Severity == s {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// String returns a one-line human-readable summary of the report.
//
// Example output:
//
//	Analysis: 3 findings (1 high, 1 medium, 1 low), 0 syntax issues, complexity 12
func (r *Report) String() string {
	s := r.Summarize()
	return fmt.Sprintf(
		"Analysis: %d findings (%d high, %d medium, %d low), %d syntax issues, complexity %d",
		s.Total, s.High, s.Medium, s.Low, len(r.SyntaxIssues), r.ComplexityScore,
	)
}

// Titles returns the finding titles in evaluation order. Mostly useful in
// tests and terse console output.
func (r *Report) Titles() []string {
	titles := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		titles = append(titles, f.Title)
	}
	return titles
}

// HasFindingTitled reports whether any finding's title contains the given
// substring, case-insensitively.
func (r *Report) HasFindingTitled(substr string) bool {
	needle := strings.ToLower(substr)
	for _, f := range r.Findings {
		if strings.Contains(strings.ToLower(f.Title), needle) {
			return true
		}
	}
	return false
}
