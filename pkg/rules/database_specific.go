package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/dialect"
	"github.com/nsxbet/sql-advisor/pkg/types"
)

var selectLiteralNumber = regexp.MustCompile(`\bSELECT\s+\d`)

// dialectRule is one entry in a per-dialect checklist. The match function
// inspects the flattened text; a true result emits the finding as-is.
type dialectRule struct {
	match   func(q string) bool
	finding types.Finding
}

var dialectRules = map[dialect.Dialect][]dialectRule{
	dialect.MySQL: {
		{
			match: func(q string) bool {
				return strings.Contains(q, "CREATE TABLE") &&
					!strings.Contains(q, "ENGINE") && !strings.Contains(q, "MYISAM")
			},
			finding: types.Finding{
				Category:    types.CategoryDatabaseSpecific,
				Severity:    types.SeverityMedium,
				Title:       "Specify a storage engine",
				Description: "CREATE TABLE without an explicit ENGINE relies on server defaults",
				Suggestion:  "Specify ENGINE=InnoDB for transactional tables",
				Example:     "CREATE TABLE users (id INT PRIMARY KEY) ENGINE=InnoDB;",
			},
		},
		{
			match: func(q string) bool {
				return strings.Contains(q, "GROUP BY") &&
					strings.Contains(q, "STRING_AGG") && !strings.Contains(q, "GROUP_CONCAT")
			},
			finding: types.Finding{
				Category:    types.CategoryDatabaseSpecific,
				Severity:    types.SeverityLow,
				Title:       "Use GROUP_CONCAT on MySQL",
				Description: "STRING_AGG is not available on MySQL",
				Suggestion:  "Use GROUP_CONCAT for string aggregation on MySQL",
				Example:     "SELECT user_id, GROUP_CONCAT(tag) FROM tags GROUP BY user_id;",
			},
		},
	},
	dialect.PostgreSQL: {
		{
			match: func(q string) bool {
				return strings.Contains(q, "DELETE") && !strings.Contains(q, "VACUUM")
			},
			finding: types.Finding{
				Category:    types.CategoryDatabaseSpecific,
				Severity:    types.SeverityLow,
				Title:       "Consider VACUUM after large deletes",
				Description: "Deleted rows leave dead tuples behind until vacuumed",
				Suggestion:  "Run VACUUM ANALYZE after bulk DELETE operations",
				Example:     "VACUUM ANALYZE orders;",
			},
		},
		{
			match: func(q string) bool {
				return strings.Contains(q, "UPPER(") &&
					strings.Contains(q, "LIKE") && !strings.Contains(q, "ILIKE")
			},
			finding: types.Finding{
				Category:    types.CategoryDatabaseSpecific,
				Severity:    types.SeverityLow,
				Title:       "Use ILIKE for case-insensitive matching",
				Description: "Wrapping a column in UPPER() for LIKE comparisons prevents index usage",
				Suggestion:  "Use ILIKE instead of UPPER(column) LIKE on PostgreSQL",
				Example:     "WHERE name ILIKE 'john%' -- Instead of WHERE UPPER(name) LIKE 'JOHN%'",
			},
		},
	},
	dialect.Oracle: {
		{
			match: func(q string) bool { return strings.Contains(q, "LIMIT") },
			finding: types.Finding{
				Category:    types.CategoryDatabaseSpecific,
				Severity:    types.SeverityHigh,
				Title:       "LIMIT is not valid on Oracle",
				Description: "Oracle has no LIMIT clause; the statement will not execute",
				Suggestion:  "Use ROWNUM or FETCH FIRST n ROWS ONLY for pagination",
				Example:     "SELECT * FROM users FETCH FIRST 10 ROWS ONLY;",
			},
		},
		{
			match: func(q string) bool {
				return selectLiteralNumber.MatchString(q) && !strings.Contains(q, "DUAL")
			},
			finding: types.Finding{
				Category:    types.CategoryDatabaseSpecific,
				Severity:    types.SeverityMedium,
				Title:       "SELECT of a literal needs FROM DUAL",
				Description: "Oracle requires a FROM clause even when selecting literals",
				Suggestion:  "Select literals from the DUAL table",
				Example:     "SELECT 1 FROM DUAL;",
			},
		},
	},
	dialect.SQLServer: {
		{
			match: func(q string) bool { return strings.Contains(q, "NOLOCK") },
			finding: types.Finding{
				Category:    types.CategoryDatabaseSpecific,
				Severity:    types.SeverityHigh,
				Title:       "Avoid the NOLOCK hint",
				Description: "NOLOCK reads uncommitted data and can return duplicate or missing rows",
				Suggestion:  "Use READ COMMITTED SNAPSHOT isolation instead of NOLOCK hints",
				Example:     "ALTER DATABASE mydb SET READ_COMMITTED_SNAPSHOT ON;",
			},
		},
		{
			match: func(q string) bool {
				return strings.Contains(q, "LIMIT") && !strings.Contains(q, "TOP")
			},
			finding: types.Finding{
				Category:    types.CategoryDatabaseSpecific,
				Severity:    types.SeverityHigh,
				Title:       "LIMIT is not valid on SQL Server",
				Description: "SQL Server has no LIMIT clause; the statement will not execute",
				Suggestion:  "Use TOP or OFFSET-FETCH for pagination",
				Example:     "SELECT TOP 10 * FROM users; -- or OFFSET 0 ROWS FETCH NEXT 10 ROWS ONLY",
			},
		},
	},
}

// DatabaseSpecificDetector applies the checklist for the resolved dialect.
type DatabaseSpecificDetector struct{}

// Name returns the detector name.
func (*DatabaseSpecificDetector) Name() string {
	return "database_specific"
}

// Detect runs the dialect's checklist in order; every matching entry emits
// its finding.
func (*DatabaseSpecificDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	checks, ok := dialectRules[ctx.Dialect]
	if !ok {
		return nil, fmt.Errorf("no dialect checklist for %q", ctx.Dialect)
	}

	var findings []*types.Finding
	for _, check := range checks {
		if check.match(ctx.Flattened) {
			f := check.finding
			findings = append(findings, &f)
		}
	}
	return findings, nil
}
