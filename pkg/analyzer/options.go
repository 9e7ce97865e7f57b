package analyzer

import "github.com/nsxbet/sql-advisor/pkg/rules"

// analyzeOptions holds per-call options for Analyze.
type analyzeOptions struct {
	registry     *rules.Registry
	queryLogging bool
}

// Option customizes a single Analyze call.
type Option func(*analyzeOptions)

// WithDetectors replaces the detector set for this call. Useful for running
// a subset of detectors or injecting custom ones; the registry's order
// determines the order of findings.
func WithDetectors(registry *rules.Registry) Option {
	return func(o *analyzeOptions) {
		o.registry = registry
	}
}

// WithQueryLogging logs the query being analyzed at debug level.
func WithQueryLogging() Option {
	return func(o *analyzeOptions) {
		o.queryLogging = true
	}
}
