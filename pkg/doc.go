// Package pkg groups the SQL Advisor library packages.
//
// SQL Advisor analyzes SQL queries for optimization opportunities across
// multiple database dialects. Analysis is purely heuristic: queries are
// never executed and no schema knowledge is required.
//
// # Package Structure
//
//   - analyzer: high-level analysis API (recommended starting point)
//   - rules: the optimization detectors and their registry
//   - syntax: lightweight syntax validation and misspelling detection
//   - sqlparser: ANTLR-based lenient tokenizer
//   - dialect: dialect identifiers and capability profiles
//   - types: report and finding structures
//   - config: detector configuration loading
//   - server: HTTP transport for the analyzer
//   - logger: logging abstraction layer
//
// # Getting Started
//
//	import (
//	    "github.com/nsxbet/sql-advisor/pkg/analyzer"
//	    "github.com/nsxbet/sql-advisor/pkg/dialect"
//	)
//
//	func main() {
//	    a := analyzer.New(dialect.PostgreSQL)
//	    report, err := a.Analyze(context.Background(), "SELECT * FROM users")
//	    // Inspect report.Findings, report.SyntaxIssues, report.Tips...
//	}
//
// Every analysis produces a full report: findings from the detectors, syntax
// issues, a bounded complexity score and execution-plan tips. Individual
// detector failures are logged and skipped rather than aborting the run.
//
// All public APIs are safe for concurrent use; one Analyzer may serve many
// goroutines.
package pkg
