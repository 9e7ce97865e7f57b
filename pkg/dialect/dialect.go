// Package dialect holds the static per-database metadata the analyzer
// consults. Profiles are built once at package init and are read-only
// afterwards, so they can be shared freely between concurrent analyses.
package dialect

import "strings"

// Dialect identifies a supported database product.
type Dialect string

const (
	MySQL      Dialect = "mysql"
	PostgreSQL Dialect = "postgresql"
	Oracle     Dialect = "oracle"
	SQLServer  Dialect = "sqlserver"
)

// Default is the dialect used when the caller does not specify one or
// specifies an unknown value.
const Default = MySQL

// Normalize maps an arbitrary dialect identifier onto the closed set of
// supported dialects. Unknown values silently coerce to the default; this
// is not an error condition.
func Normalize(s string) Dialect {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case MySQL:
		return MySQL
	case PostgreSQL:
		return PostgreSQL
	case Oracle:
		return Oracle
	case SQLServer:
		return SQLServer
	default:
		return Default
	}
}

// All returns the supported dialects in a stable order.
func All() []Dialect {
	return []Dialect{MySQL, PostgreSQL, Oracle, SQLServer}
}

// Profile describes the capabilities and syntax conventions of one dialect.
// Profiles are descriptive metadata for the advisory checks, not an enforced
// grammar.
type Profile struct {
	// Name is the canonical dialect identifier.
	Name Dialect

	// DisplayName is the product name used in user-facing messages.
	DisplayName string

	// LimitKeyword is the result-limiting clause keyword, or empty when the
	// dialect has no dedicated keyword (Oracle uses the ROWNUM pseudo-column
	// or FETCH FIRST instead).
	LimitKeyword string

	// IdentifierQuote is the character that quotes identifiers.
	IdentifierQuote string

	// ConcatOperator is the string-concatenation operator or function.
	ConcatOperator string

	// DateFunctions lists the recognized date/time function names.
	DateFunctions []string

	// BuiltinFunctions lists dialect-specific built-in function names.
	BuiltinFunctions []string

	SupportsCTE             bool
	SupportsWindowFunctions bool

	// MaxIndexKeyLength is the maximum index key length in bytes, or 0 when
	// the dialect imposes no fixed limit.
	MaxIndexKeyLength int

	// CaseSensitive reports whether unquoted identifiers are case sensitive.
	CaseSensitive bool

	// RowNumberPseudoColumn is the row-numbering pseudo-column, if any.
	RowNumberPseudoColumn string

	// FullTextHint is the dialect's recommended alternative to LIKE scans.
	FullTextHint string

	// StatementTerminator is the conventional statement terminator.
	StatementTerminator string
}

// QuoteIdentifier wraps a table or column name in the dialect's quoting.
func (p *Profile) QuoteIdentifier(name string) string {
	return p.IdentifierQuote + name + p.IdentifierQuote
}

// SupportsLimit reports whether the dialect has a LIMIT-family keyword.
func (p *Profile) SupportsLimit() bool {
	return p.LimitKeyword != ""
}

var profiles = map[Dialect]*Profile{
	MySQL: {
		Name:                    MySQL,
		DisplayName:             "MySQL",
		LimitKeyword:            "LIMIT",
		IdentifierQuote:         "`",
		ConcatOperator:          "CONCAT",
		DateFunctions:           []string{"NOW", "CURDATE", "CURTIME", "DATE_ADD", "DATE_SUB", "DATEDIFF", "YEAR", "MONTH", "DAY"},
		BuiltinFunctions:        []string{"IFNULL", "GROUP_CONCAT", "SUBSTRING_INDEX", "LAST_INSERT_ID"},
		SupportsCTE:             true,
		SupportsWindowFunctions: true,
		MaxIndexKeyLength:       3072,
		CaseSensitive:           false,
			FullTextHint:            "Consider a FULLTEXT index for complex text searches",
		StatementTerminator:     ";",
	},
	PostgreSQL: {
		Name:                    PostgreSQL,
		DisplayName:             "PostgreSQL",
		LimitKeyword:            "LIMIT",
		IdentifierQuote:         `"`,
		ConcatOperator:          "||",
		DateFunctions:           []string{"NOW", "CURRENT_DATE", "CURRENT_TIME", "AGE", "DATE_TRUNC", "EXTRACT"},
		BuiltinFunctions:        []string{"COALESCE", "STRING_AGG", "ARRAY_AGG", "GENERATE_SERIES"},
		SupportsCTE:             true,
		SupportsWindowFunctions: true,
		MaxIndexKeyLength:       2704,
		CaseSensitive:           true,
			FullTextHint:            "Consider a GIN index with pg_trgm or tsvector for complex text searches",
		StatementTerminator:     ";",
	},
	Oracle: {
		Name:                    Oracle,
		DisplayName:             "Oracle",
		LimitKeyword:            "",
		IdentifierQuote:         `"`,
		ConcatOperator:          "||",
		DateFunctions:           []string{"SYSDATE", "CURRENT_DATE", "ADD_MONTHS", "MONTHS_BETWEEN", "TRUNC", "EXTRACT"},
		BuiltinFunctions:        []string{"NVL", "NVL2", "DECODE", "LISTAGG", "TO_CHAR", "TO_DATE"},
		SupportsCTE:             true,
		SupportsWindowFunctions: true,
		CaseSensitive:           false,
		RowNumberPseudoColumn:   "ROWNUM",
			FullTextHint:            "Consider Oracle Text (CONTEXT index) for complex text searches",
		StatementTerminator:     ";",
	},
	SQLServer: {
		Name:                    SQLServer,
		DisplayName:             "SQL Server",
		LimitKeyword:            "TOP",
		IdentifierQuote:         "[",
		ConcatOperator:          "+",
		DateFunctions:           []string{"GETDATE", "SYSDATETIME", "DATEADD", "DATEDIFF", "DATEPART", "YEAR", "MONTH", "DAY"},
		BuiltinFunctions:        []string{"ISNULL", "STRING_AGG", "STUFF", "CHARINDEX", "CONVERT"},
		SupportsCTE:             true,
		SupportsWindowFunctions: true,
		MaxIndexKeyLength:       900,
		CaseSensitive:           false,
			FullTextHint:            "Consider a full-text index with CONTAINS for complex text searches",
		StatementTerminator:     ";",
	},
}

// Get returns the static profile for the given dialect. Unknown dialects
// resolve to the default profile, mirroring Normalize.
func Get(d Dialect) *Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[Default]
}
