// Package analyzer provides the high-level API for SQL query analysis.
//
// # Quick Start
//
//	// Create an analyzer for MySQL
//	a := analyzer.New(dialect.MySQL)
//
//	// Analyze a query
//	report, err := a.Analyze(context.Background(), "SELECT * FROM users")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(report)
//	for _, f := range report.Findings {
//	    fmt.Printf("[%s] %s\n", f.Severity, f.Title)
//	}
//
// Analysis is synchronous, holds no locks and keeps no per-request state,
// so one Analyzer may serve many goroutines concurrently.
package analyzer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/nsxbet/sql-advisor/pkg/config"
	"github.com/nsxbet/sql-advisor/pkg/dialect"
	"github.com/nsxbet/sql-advisor/pkg/logger"
	"github.com/nsxbet/sql-advisor/pkg/rules"
	"github.com/nsxbet/sql-advisor/pkg/sqlparser"
	"github.com/nsxbet/sql-advisor/pkg/syntax"
	"github.com/nsxbet/sql-advisor/pkg/types"
)

// ErrEmptyQuery is returned when the query is blank after trimming. It is
// the only error Analyze can return for well-formed calls: everything past
// the blank-input check produces a best-effort report instead of failing.
var ErrEmptyQuery = errors.New("query cannot be empty")

// Analyzer runs the full analysis pipeline: syntax validation, detector
// evaluation, complexity scoring and tip generation.
//
// Analyzer is safe for concurrent use by multiple goroutines.
type Analyzer struct {
	config   *config.Config
	dialect  dialect.Dialect
	profile  *dialect.Profile
	registry *rules.Registry
}

// New creates an Analyzer for the given dialect with every detector enabled.
func New(d dialect.Dialect) *Analyzer {
	d = dialect.Normalize(string(d))
	return &Analyzer{
		config:   config.DefaultConfig("default"),
		dialect:  d,
		profile:  dialect.Get(d),
		registry: rules.Defaults(),
	}
}

// NewForName creates an Analyzer from an arbitrary dialect identifier.
// Unknown identifiers coerce to the default dialect.
func NewForName(name string) *Analyzer {
	return New(dialect.Normalize(name))
}

// WithConfig loads detector configuration from a YAML or JSON file,
// replacing the current configuration.
func (a *Analyzer) WithConfig(filename string) error {
	cfg, err := config.LoadFromFile(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to load config from %s", filename)
	}
	a.config = cfg
	return nil
}

// WithConfigObject sets a configuration object directly and returns the
// Analyzer for chaining.
func (a *Analyzer) WithConfigObject(cfg *config.Config) *Analyzer {
	a.config = cfg
	return a
}

// Dialect returns the resolved dialect this Analyzer was built for.
func (a *Analyzer) Dialect() dialect.Dialect {
	return a.dialect
}

// Analyze runs every enabled detector against the query and assembles the
// report.
//
// The query must be non-blank after trimming; a blank query returns
// ErrEmptyQuery and no report. If the tokenizer rejects the query, the
// report carries only the parse-failure syntax issue: detectors, scorer and
// tip generator never run on unparseable input.
//
// Individual detector failures are logged and contribute no findings; they
// never abort the analysis. Two calls with identical input produce
// identical reports.
func (a *Analyzer) Analyze(ctx context.Context, query string, opts ...Option) (*types.Report, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	options := &analyzeOptions{registry: a.registry}
	for _, opt := range opts {
		opt(options)
	}
	if options.queryLogging {
		slog.Debug("analyzing query", "dialect", a.dialect, "query", query)
	}

	report := &types.Report{
		Query:        query,
		Dialect:      string(a.dialect),
		Findings:     []*types.Finding{},
		SyntaxIssues: []string{},
		Tips:         []string{},
	}

	parsed, err := sqlparser.Parse(query)
	if err != nil {
		// Short circuit: unparseable input gets a report with only the
		// parse failure, zero complexity and no tips.
		report.SyntaxIssues = append(report.SyntaxIssues, err.Error())
		return report, nil
	}

	report.SyntaxIssues = append(report.SyntaxIssues, syntax.Validate(query, a.dialect)...)

	ruleCtx := &rules.Context{
		Raw:       query,
		Flattened: parsed.Flattened,
		Parsed:    parsed,
		Dialect:   a.dialect,
		Profile:   a.profile,
	}

	for _, detector := range options.registry.All() {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		if !a.config.IsEnabled(detector.Name()) {
			continue
		}
		report.Findings = append(report.Findings, a.runDetector(detector, ruleCtx)...)
	}

	report.ComplexityScore = Complexity(parsed)
	report.Tips = Tips(parsed, a.profile)

	return report, nil
}

// runDetector applies the uniform failure isolation every detector gets:
// errors and panics are logged and yield zero findings.
func (*Analyzer) runDetector(d rules.Detector, ruleCtx *rules.Context) (findings []*types.Finding) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("detector panic recovered", "detector", d.Name(), "panic", r)
			findings = nil
		}
	}()

	findings, err := d.Detect(ruleCtx)
	if err != nil {
		slog.Error("detector failed", "detector", d.Name(), logger.Error(err))
		return nil
	}
	return findings
}
