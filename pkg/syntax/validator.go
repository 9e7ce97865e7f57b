// Package syntax implements the dialect-aware textual checks that run before
// rule evaluation: keyword misspellings, per-dialect compatibility problems,
// parenthesis balance and keyword ordering.
//
// Every check is a text heuristic, not a grammar validation. In particular
// the keyword-order checks compare first-occurrence indexes and can misfire
// on deeply nested subqueries; that limitation is intentional and documented,
// full grammar validation being outside this engine's scope.
package syntax

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/dialect"
)

var (
	singleQuoted = regexp.MustCompile(`'(?:[^'\\]|\\.)*'`)
	doubleQuoted = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
	lineComment  = regexp.MustCompile(`--[^\n]*`)
	hashComment  = regexp.MustCompile(`#[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	wordToken    = regexp.MustCompile(`[A-Z_][A-Z0-9_]*`)
)

// dialectCheck is one entry in the per-dialect compatibility checklist.
type dialectCheck struct {
	pattern *regexp.Regexp
	message string
}

var dialectChecks = map[dialect.Dialect][]dialectCheck{
	dialect.MySQL: {
		{regexp.MustCompile(`\bTOP\b`), "MySQL doesn't support the TOP keyword, use LIMIT instead"},
		{regexp.MustCompile(`\bROWNUM\b`), "MySQL doesn't support the ROWNUM pseudo-column, use LIMIT instead"},
	},
	dialect.PostgreSQL: {
		{regexp.MustCompile(`\bTOP\b`), "PostgreSQL doesn't support the TOP keyword, use LIMIT instead"},
		{regexp.MustCompile(`\bROWNUM\b`), "PostgreSQL doesn't support the ROWNUM pseudo-column, use LIMIT instead"},
		{regexp.MustCompile(`\bIFNULL\s*\(`), "PostgreSQL doesn't support IFNULL, use COALESCE instead"},
	},
	dialect.Oracle: {
		{regexp.MustCompile(`\bLIMIT\b`), "Oracle doesn't support LIMIT keyword, use ROWNUM or FETCH FIRST instead"},
		{regexp.MustCompile(`\bAUTO_INCREMENT\b`), "Oracle doesn't support AUTO_INCREMENT, use sequences or identity columns instead"},
	},
	dialect.SQLServer: {
		{regexp.MustCompile(`\bLIMIT\b`), "SQL Server doesn't support LIMIT keyword, use TOP or OFFSET-FETCH instead"},
		{regexp.MustCompile(`\bAUTO_INCREMENT\b`), "SQL Server doesn't support AUTO_INCREMENT, use IDENTITY instead"},
	},
}

// Validate runs every syntax check against the raw query text and returns
// the issues in check order. It runs unconditionally before rule evaluation,
// including on queries the tokenizer later rejects.
func Validate(raw string, d dialect.Dialect) []string {
	var issues []string

	upper := strings.ToUpper(raw)
	cleaned := stripLiteralsAndComments(upper)

	issues = append(issues, checkMisspellings(cleaned)...)
	issues = append(issues, checkDialectCompatibility(cleaned, d)...)
	issues = append(issues, checkParentheses(raw)...)
	issues = append(issues, checkKeywordOrder(upper)...)

	return issues
}

// stripLiteralsAndComments blanks out quoted strings and comments so that
// the word scans never fire on text inside literals.
func stripLiteralsAndComments(upper string) string {
	cleaned := singleQuoted.ReplaceAllString(upper, " ")
	cleaned = doubleQuoted.ReplaceAllString(cleaned, " ")
	cleaned = blockComment.ReplaceAllString(cleaned, " ")
	cleaned = lineComment.ReplaceAllString(cleaned, " ")
	cleaned = hashComment.ReplaceAllString(cleaned, " ")
	return cleaned
}

func checkMisspellings(cleaned string) []string {
	var issues []string
	for _, tok := range wordToken.FindAllString(cleaned, -1) {
		if correct, ok := misspellings[tok]; ok {
			issues = append(issues, fmt.Sprintf("Possible misspelling: %s should be %s", tok, correct))
		}
	}
	return issues
}

func checkDialectCompatibility(cleaned string, d dialect.Dialect) []string {
	var issues []string
	for _, check := range dialectChecks[d] {
		if check.pattern.MatchString(cleaned) {
			issues = append(issues, check.message)
		}
	}
	return issues
}

func checkParentheses(raw string) []string {
	open := strings.Count(raw, "(")
	closed := strings.Count(raw, ")")
	if open != closed {
		return []string{fmt.Sprintf("Unmatched parentheses: %d opening vs %d closing", open, closed)}
	}
	return nil
}

// checkKeywordOrder flags clause orderings that are almost always mistakes.
// These are first-index substring comparisons, so repeated keywords in
// nested subqueries can trip them; they are advisory only.
func checkKeywordOrder(upper string) []string {
	var issues []string

	selectIdx := strings.Index(upper, "SELECT")
	fromIdx := strings.Index(upper, "FROM")
	whereIdx := strings.Index(upper, "WHERE")
	orderIdx := strings.Index(upper, "ORDER BY")
	groupIdx := strings.Index(upper, "GROUP BY")

	if fromIdx >= 0 && selectIdx >= 0 && fromIdx < selectIdx {
		issues = append(issues, "FROM appears before SELECT, check the clause order")
	}
	if whereIdx >= 0 && orderIdx >= 0 && whereIdx > orderIdx {
		issues = append(issues, "WHERE appears after ORDER BY, check the clause order")
	}
	if groupIdx >= 0 && orderIdx >= 0 && groupIdx > orderIdx {
		issues = append(issues, "GROUP BY appears after ORDER BY, check the clause order")
	}

	return issues
}
