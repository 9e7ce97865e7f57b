// Package rules contains the ordered set of optimization detectors. Each
// detector is pure and independent: it inspects the query text and parsed
// representation, emits zero or more findings, and never communicates with
// other detectors through shared state.
package rules

import (
	"github.com/nsxbet/sql-advisor/pkg/dialect"
	"github.com/nsxbet/sql-advisor/pkg/sqlparser"
	"github.com/nsxbet/sql-advisor/pkg/types"
)

// Context carries the inputs a detector may inspect.
type Context struct {
	// Raw is the original query text.
	Raw string

	// Flattened is the upper-cased textual view used by pattern scans.
	Flattened string

	// Parsed is the tokenized statement.
	Parsed *sqlparser.ParsedQuery

	// Dialect is the resolved dialect and Profile its capability record.
	Dialect dialect.Dialect
	Profile *dialect.Profile
}

// Detector is the interface every optimization rule implements.
type Detector interface {
	// Name returns the stable detector identifier used in configuration.
	Name() string

	// Detect inspects the query and returns its findings in emission order.
	// A non-nil error means the detector failed internally; the orchestrator
	// logs it and treats the detector as having produced no findings.
	Detect(ctx *Context) ([]*types.Finding, error)
}

// Registry holds detectors in a fixed evaluation order. Registration order
// determines the order findings appear in a report; no re-sorting by
// severity happens downstream.
type Registry struct {
	order  []Detector
	byName map[string]Detector
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Detector)}
}

// Register appends a detector. Registering a duplicate name replaces the
// earlier entry in place, keeping its position.
func (r *Registry) Register(d Detector) {
	if _, exists := r.byName[d.Name()]; exists {
		for i, existing := range r.order {
			if existing.Name() == d.Name() {
				r.order[i] = d
				break
			}
		}
	} else {
		r.order = append(r.order, d)
	}
	r.byName[d.Name()] = d
}

// Get retrieves a detector by name.
func (r *Registry) Get(name string) (Detector, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// All returns the detectors in evaluation order.
func (r *Registry) All() []Detector {
	return r.order
}

// Defaults returns a registry with every built-in detector in its canonical
// evaluation order.
func Defaults() *Registry {
	r := NewRegistry()
	r.Register(&SelectStarDetector{})
	r.Register(&MissingWhereDetector{})
	r.Register(&NonSargableDetector{})
	r.Register(&SubqueryOptimizationDetector{})
	r.Register(&JoinOptimizationDetector{})
	r.Register(&IndexSuggestionsDetector{})
	r.Register(&LimitClauseDetector{})
	r.Register(&OrderByOptimizationDetector{})
	r.Register(&FunctionInWhereDetector{})
	r.Register(&UnnecessaryDistinctDetector{})
	r.Register(&DatabaseSpecificDetector{})
	return r
}
