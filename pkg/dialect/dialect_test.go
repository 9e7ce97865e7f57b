package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Dialect
	}{
		{"mysql", "mysql", MySQL},
		{"postgresql", "postgresql", PostgreSQL},
		{"oracle", "oracle", Oracle},
		{"sqlserver", "sqlserver", SQLServer},
		{"mixed case", "MySQL", MySQL},
		{"whitespace", "  oracle  ", Oracle},
		{"unknown coerces to default", "mongodb", MySQL},
		{"empty coerces to default", "", MySQL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestGet_AllDialectsHaveProfiles(t *testing.T) {
	for _, d := range All() {
		p := Get(d)
		require.NotNil(t, p, "missing profile for %s", d)
		assert.Equal(t, d, p.Name)
		assert.NotEmpty(t, p.DisplayName)
		assert.NotEmpty(t, p.IdentifierQuote)
		assert.NotEmpty(t, p.ConcatOperator)
		assert.NotEmpty(t, p.DateFunctions)
		assert.NotEmpty(t, p.BuiltinFunctions)
		assert.NotEmpty(t, p.FullTextHint)
	}
}

func TestGet_UnknownDialectFallsBack(t *testing.T) {
	p := Get(Dialect("sybase"))
	require.NotNil(t, p)
	assert.Equal(t, MySQL, p.Name)
}

func TestProfile_OracleHasNoLimitKeyword(t *testing.T) {
	p := Get(Oracle)
	assert.False(t, p.SupportsLimit())
	assert.Equal(t, "ROWNUM", p.RowNumberPseudoColumn)
}

func TestProfile_QuoteIdentifier(t *testing.T) {
	assert.Equal(t, "`users`", Get(MySQL).QuoteIdentifier("users"))
	assert.Equal(t, `"users"`, Get(PostgreSQL).QuoteIdentifier("users"))
}
