package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsxbet/sql-advisor/pkg/dialect"
	"github.com/nsxbet/sql-advisor/pkg/sqlparser"
	"github.com/nsxbet/sql-advisor/pkg/types"
)

// newContext builds a detector context the way the orchestrator does.
func newContext(t *testing.T, query string, d dialect.Dialect) *Context {
	t.Helper()
	parsed, err := sqlparser.Parse(query)
	require.NoError(t, err)
	return &Context{
		Raw:       query,
		Flattened: parsed.Flattened,
		Parsed:    parsed,
		Dialect:   d,
		Profile:   dialect.Get(d),
	}
}

func detect(t *testing.T, d Detector, query string, dia dialect.Dialect) []*types.Finding {
	t.Helper()
	findings, err := d.Detect(newContext(t, query, dia))
	require.NoError(t, err)
	return findings
}

func TestDefaults_Order(t *testing.T) {
	want := []string{
		"select_star",
		"missing_where",
		"non_sargable",
		"subquery_optimization",
		"join_optimization",
		"index_suggestions",
		"limit_clause",
		"order_by_optimization",
		"function_in_where",
		"unnecessary_distinct",
		"database_specific",
	}
	var got []string
	for _, d := range Defaults().All() {
		got = append(got, d.Name())
	}
	assert.Equal(t, want, got)
}

func TestRegistry_RegisterReplacesInPlace(t *testing.T) {
	r := NewRegistry()
	r.Register(&SelectStarDetector{})
	r.Register(&MissingWhereDetector{})
	r.Register(&SelectStarDetector{})

	require.Len(t, r.All(), 2)
	assert.Equal(t, "select_star", r.All()[0].Name())
}

func TestSelectStar(t *testing.T) {
	d := &SelectStarDetector{}

	findings := detect(t, d, "SELECT * FROM users", dialect.MySQL)
	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityMedium, findings[0].Severity)
	assert.Equal(t, types.CategoryPerformance, findings[0].Category)

	// Newline-separated variant triggers too.
	findings = detect(t, d, "SELECT\n* FROM users", dialect.MySQL)
	assert.Len(t, findings, 1)

	assert.Empty(t, detect(t, d, "SELECT id, name FROM users", dialect.MySQL))
}

func TestMissingWhere(t *testing.T) {
	d := &MissingWhereDetector{}

	findings := detect(t, d, "SELECT id FROM users", dialect.MySQL)
	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityHigh, findings[0].Severity)

	assert.Empty(t, detect(t, d, "SELECT id FROM users WHERE id = 1", dialect.MySQL))
	assert.Empty(t, detect(t, d, "SELECT id FROM users LIMIT 10", dialect.MySQL))
	assert.Empty(t, detect(t, d, "SELECT u.id FROM users u JOIN orders o ON u.id = o.user_id", dialect.MySQL))
}

func TestNonSargable(t *testing.T) {
	d := &NonSargableDetector{}

	t.Run("function on column after WHERE", func(t *testing.T) {
		findings := detect(t, d, "SELECT id FROM users WHERE YEAR(created_at) = 2023", dialect.MySQL)
		require.Len(t, findings, 1)
		assert.Equal(t, types.SeverityHigh, findings[0].Severity)
		assert.Equal(t, types.CategoryIndex, findings[0].Category)
	})

	t.Run("leading wildcard LIKE", func(t *testing.T) {
		findings := detect(t, d, "SELECT id FROM users WHERE name LIKE '%john%'", dialect.MySQL)
		require.Len(t, findings, 1)
		assert.Equal(t, "Leading wildcard in LIKE", findings[0].Title)
		assert.Equal(t, types.SeverityMedium, findings[0].Severity)
	})

	t.Run("both fire at most once each", func(t *testing.T) {
		findings := detect(t, d, "SELECT id FROM users WHERE UPPER(name) LIKE '%JOHN%'", dialect.MySQL)
		assert.Len(t, findings, 2)
	})

	t.Run("trailing wildcard is fine", func(t *testing.T) {
		assert.Empty(t, detect(t, d, "SELECT id FROM users WHERE name LIKE 'john%'", dialect.MySQL))
	})
}

func TestSubqueryOptimization(t *testing.T) {
	d := &SubqueryOptimizationDetector{}

	findings := detect(t, d, "SELECT * FROM users WHERE id IN (SELECT user_id FROM orders)", dialect.MySQL)
	require.Len(t, findings, 2)
	assert.Equal(t, "Consider replacing subquery with JOIN", findings[0].Title)
	assert.Equal(t, "Consider EXISTS instead of IN", findings[1].Title)

	assert.Empty(t, detect(t, d, "SELECT id FROM users WHERE id = 1", dialect.MySQL))
}

func TestJoinOptimization(t *testing.T) {
	d := &JoinOptimizationDetector{}

	t.Run("implicit comma join", func(t *testing.T) {
		findings := detect(t, d, "SELECT * FROM users, orders WHERE users.id = orders.user_id", dialect.MySQL)
		require.Len(t, findings, 1)
		assert.Equal(t, "Use explicit JOINs", findings[0].Title)
		assert.Equal(t, types.SeverityMedium, findings[0].Severity)
	})

	t.Run("join without on", func(t *testing.T) {
		findings := detect(t, d, "SELECT * FROM users u INNER JOIN orders o", dialect.MySQL)
		require.Len(t, findings, 1)
		assert.Equal(t, "Missing JOIN conditions", findings[0].Title)
		assert.Equal(t, types.SeverityHigh, findings[0].Severity)
	})

	t.Run("cross join is exempt", func(t *testing.T) {
		assert.Empty(t, detect(t, d, "SELECT * FROM sizes CROSS JOIN colors", dialect.MySQL))
	})

	t.Run("proper join is clean", func(t *testing.T) {
		assert.Empty(t, detect(t, d, "SELECT * FROM users u JOIN orders o ON u.id = o.user_id", dialect.MySQL))
	})
}

func TestIndexSuggestions(t *testing.T) {
	d := &IndexSuggestionsDetector{}

	t.Run("where columns", func(t *testing.T) {
		findings := detect(t, d, "SELECT * FROM users WHERE status = 'active' AND age > 21", dialect.MySQL)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Description, "STATUS")
		assert.Contains(t, findings[0].Description, "AGE")
		assert.Contains(t, findings[0].Example, "CREATE INDEX")
	})

	t.Run("duplicate columns deduped", func(t *testing.T) {
		findings := detect(t, d, "SELECT * FROM users WHERE age > 21 AND age < 65", dialect.MySQL)
		require.Len(t, findings, 1)
		assert.Equal(t, "Columns used in WHERE clause could benefit from indexes: AGE", findings[0].Description)
	})

	t.Run("order by columns", func(t *testing.T) {
		findings := detect(t, d, "SELECT * FROM users ORDER BY created_at, name", dialect.MySQL)
		require.Len(t, findings, 1)
		assert.Equal(t, "Consider index for ORDER BY", findings[0].Title)
		assert.Contains(t, findings[0].Example, "CREATED_AT, NAME")
	})

	t.Run("both clauses emit two findings", func(t *testing.T) {
		findings := detect(t, d, "SELECT * FROM users WHERE status = 'x' ORDER BY name", dialect.MySQL)
		assert.Len(t, findings, 2)
	})

	t.Run("no where or order by", func(t *testing.T) {
		assert.Empty(t, detect(t, d, "SELECT id FROM users", dialect.MySQL))
	})
}

func TestLimitClause(t *testing.T) {
	d := &LimitClauseDetector{}

	findings := detect(t, d, "SELECT id FROM users", dialect.MySQL)
	require.Len(t, findings, 1)
	assert.Equal(t, "Consider adding LIMIT clause", findings[0].Title)

	assert.Empty(t, detect(t, d, "SELECT id FROM users LIMIT 10", dialect.MySQL))
	assert.Empty(t, detect(t, d, "SELECT id FROM users WHERE id = 1", dialect.MySQL))
}

func TestOrderByOptimization(t *testing.T) {
	d := &OrderByOptimizationDetector{}

	findings := detect(t, d, "SELECT id FROM users ORDER BY created_at", dialect.MySQL)
	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityLow, findings[0].Severity)

	assert.Empty(t, detect(t, d, "SELECT id FROM users ORDER BY created_at LIMIT 50", dialect.MySQL))
}

func TestFunctionInWhere(t *testing.T) {
	d := &FunctionInWhereDetector{}

	t.Run("first match only", func(t *testing.T) {
		findings := detect(t, d, "SELECT id FROM logs WHERE YEAR(ts) = 2023 AND MONTH(ts) = 6", dialect.MySQL)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Description, "YEAR")
	})

	t.Run("requires where", func(t *testing.T) {
		assert.Empty(t, detect(t, d, "SELECT YEAR(ts) FROM logs", dialect.MySQL))
	})
}

func TestUnnecessaryDistinct(t *testing.T) {
	d := &UnnecessaryDistinctDetector{}

	findings := detect(t, d, "SELECT DISTINCT name FROM users", dialect.MySQL)
	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityLow, findings[0].Severity)

	assert.Empty(t, detect(t, d, "SELECT DISTINCT u.name FROM users u JOIN orders o ON u.id = o.user_id", dialect.MySQL))
}

func TestDatabaseSpecific(t *testing.T) {
	d := &DatabaseSpecificDetector{}

	t.Run("mysql create table without engine", func(t *testing.T) {
		findings := detect(t, d, "CREATE TABLE users (id INT PRIMARY KEY)", dialect.MySQL)
		require.Len(t, findings, 1)
		assert.Equal(t, "Specify a storage engine", findings[0].Title)
		assert.Equal(t, types.CategoryDatabaseSpecific, findings[0].Category)
	})

	t.Run("mysql create table with engine is clean", func(t *testing.T) {
		assert.Empty(t, detect(t, d, "CREATE TABLE users (id INT PRIMARY KEY) ENGINE=InnoDB", dialect.MySQL))
	})

	t.Run("postgresql upper like", func(t *testing.T) {
		findings := detect(t, d, "SELECT * FROM users WHERE UPPER(name) LIKE 'JOHN%'", dialect.PostgreSQL)
		require.Len(t, findings, 1)
		assert.Equal(t, "Use ILIKE for case-insensitive matching", findings[0].Title)
	})

	t.Run("oracle limit", func(t *testing.T) {
		findings := detect(t, d, "SELECT * FROM users LIMIT 10", dialect.Oracle)
		require.Len(t, findings, 1)
		assert.Equal(t, types.SeverityHigh, findings[0].Severity)
		assert.Contains(t, findings[0].Suggestion, "ROWNUM")
	})

	t.Run("oracle select literal without dual", func(t *testing.T) {
		findings := detect(t, d, "SELECT 1", dialect.Oracle)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Title, "DUAL")
	})

	t.Run("sqlserver nolock", func(t *testing.T) {
		findings := detect(t, d, "SELECT * FROM users WITH (NOLOCK) WHERE id = 1", dialect.SQLServer)
		require.Len(t, findings, 1)
		assert.Equal(t, "Avoid the NOLOCK hint", findings[0].Title)
	})

	t.Run("sqlserver limit without top", func(t *testing.T) {
		findings := detect(t, d, "SELECT * FROM users LIMIT 10", dialect.SQLServer)
		require.Len(t, findings, 1)
		assert.Equal(t, types.SeverityHigh, findings[0].Severity)
	})
}
