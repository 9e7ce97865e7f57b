package analyzer

import (
	"strings"

	"github.com/nsxbet/sql-advisor/pkg/sqlparser"
)

// maxComplexity is the upper clamp for the complexity score.
const maxComplexity = 100

// complexityWeights assigns a weight to each structural keyword counted in
// the flattened text.
var complexityWeights = []struct {
	keyword string
	weight  int
}{
	{"JOIN", 2},
	{"SUBQUERY", 3},
	{"UNION", 2},
	{"CASE", 1},
	{"GROUP BY", 1},
	{"ORDER BY", 1},
	{"HAVING", 2},
}

// Complexity derives a bounded structural score from the parsed query:
// a weighted sum of keyword occurrences plus one point per function call,
// clamped to 100. All terms are non-negative, so no lower clamp is needed.
func Complexity(parsed *sqlparser.ParsedQuery) int {
	score := 0
	for _, w := range complexityWeights {
		score += strings.Count(parsed.Flattened, w.keyword) * w.weight
	}
	score += parsed.FunctionCallCount()

	if score > maxComplexity {
		return maxComplexity
	}
	return score
}
