package analyzer

import (
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/dialect"
	"github.com/nsxbet/sql-advisor/pkg/sqlparser"
)

// fallbackTip is emitted when no structural signal matched.
const fallbackTip = "Query looks straightforward - ensure your tables have appropriate indexes"

// dialectTips are the two fixed hints appended for every dialect.
var dialectTips = map[dialect.Dialect][2]string{
	dialect.MySQL: {
		"Consider using query cache for frequently executed queries",
		"Keep hot tables on the InnoDB engine for row-level locking and crash recovery",
	},
	dialect.PostgreSQL: {
		"Use EXPLAIN ANALYZE to inspect the actual execution plan",
		"Partial indexes can speed up queries that always filter on the same predicate",
	},
	dialect.Oracle: {
		"Optimizer hints can guide the Oracle planner when statistics are stale",
		"Materialized views can precompute expensive joins and aggregations",
	},
	dialect.SQLServer: {
		"Review actual execution plans to spot table scans and key lookups",
		"Columnstore indexes can dramatically speed up analytical queries",
	},
}

// Tips derives execution-plan hints from the query's structural signals and
// the dialect profile. The result is never empty: when no structural signal
// matched, a single fallback tip takes their place, and the two fixed
// dialect hints are always appended.
func Tips(parsed *sqlparser.ParsedQuery, profile *dialect.Profile) []string {
	var tips []string
	q := parsed.Flattened

	if strings.Contains(q, "JOIN") {
		tips = append(tips, "Ensure JOIN conditions use indexed columns for better performance")
	}
	if strings.Contains(q, "GROUP BY") {
		tips = append(tips, "Consider adding indexes on GROUP BY columns")
	}
	if strings.Contains(q, "ORDER BY") {
		tips = append(tips, "Indexes on ORDER BY columns can eliminate sort operations")
	}
	if strings.Contains(q, "LIKE") {
		tips = append(tips, profile.FullTextHint)
	}

	if len(tips) == 0 {
		tips = append(tips, fallbackTip)
	}

	fixed := dialectTips[profile.Name]
	tips = append(tips, fixed[0], fixed[1])

	return tips
}
