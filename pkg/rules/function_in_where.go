package rules

import (
	"fmt"
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/types"
)

// problematicFunctions are calls that commonly disable index usage when
// applied to a filtered column. Checked in order; only the first match is
// reported.
var problematicFunctions = []string{"YEAR(", "MONTH(", "DAY(", "DATEPART(", "CONVERT(", "CAST("}

// FunctionInWhereDetector flags well-known index-defeating functions used
// alongside a WHERE clause.
type FunctionInWhereDetector struct{}

// Name returns the detector name.
func (*FunctionInWhereDetector) Name() string {
	return "function_in_where"
}

// Detect emits a medium index finding naming the first matching function.
func (*FunctionInWhereDetector) Detect(ctx *Context) ([]*types.Finding, error) {
	q := ctx.Flattened
	if !strings.Contains(q, "WHERE") {
		return nil, nil
	}
	for _, fn := range problematicFunctions {
		if strings.Contains(q, fn) {
			name := strings.TrimSuffix(fn, "(")
			return []*types.Finding{{
				Category:    types.CategoryIndex,
				Severity:    types.SeverityMedium,
				Title:       "Function in WHERE clause prevents index usage",
				Description: fmt.Sprintf("Using %s in WHERE clause can prevent index usage", name),
				Suggestion:  "Consider using range conditions instead of functions",
				Example: `-- Instead of: WHERE YEAR(date_col) = 2023
-- Use: WHERE date_col >= '2023-01-01' AND date_col < '2024-01-01'`,
			}}, nil
		}
	}
	return nil, nil
}
