package batch

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/recordcheck/pkg/logger"
	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

// Result is the outcome of validating the record at Index.
type Result struct {
	Index  int
	Valid  bool
	Report validator.Report
}

// Runner evaluates one rule against many records on a bounded pool of goroutines.
type Runner struct {
	rule    validator.Rule
	workers int
	logger  *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers caps the number of records evaluated at once. Values below one keep the
// default of GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the logger used for per-record debug output and run summaries.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Runner for rule.
func New(rule validator.Rule, opts ...Option) *Runner {
	r := &Runner{
		rule:    rule,
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("batch"))
	return r
}

// Workers returns the concurrency limit.
func (r *Runner) Workers() int {
	return r.workers
}

// Run validates every record and returns one Result per record in input order.
// Rules are shared between goroutines, so they must be safe for concurrent use, which
// every rule in package validator is. Run stops scheduling records once ctx is done and
// returns the context error.
func (r *Runner) Run(ctx context.Context, records []validator.Record) ([]Result, error) {
	if r.rule == nil {
		return nil, ErrNilRule
	}
	if c, ok := r.rule.(interface{ Err() error }); ok {
		if err := c.Err(); err != nil {
			return nil, errors.Join(ErrInvalidRule, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]Result, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, report := r.rule.Validate(records[i])
			results[i] = Result{Index: i, Valid: ok, Report: report}
			if !ok {
				r.logger.DebugContext(gctx, "record invalid",
					logger.RecordIndex(i),
					logger.Failures(report),
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The group context is only cancelled by a failing goroutine; an outer
	// cancellation after the last record was scheduled still has to be reported.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := Summarize(results)
	r.logger.InfoContext(ctx, "batch validated",
		logger.Group("summary",
			logger.Count(summary.Total),
			slog.Int("invalid", summary.Invalid),
		),
		logger.Duration(time.Since(start)),
	)
	return results, nil
}

// Summary counts the outcomes of a run.
type Summary struct {
	Total   int
	Invalid int
}

// Valid returns the number of records that passed.
func (s Summary) Valid() int {
	return s.Total - s.Invalid
}

// Summarize counts results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, res := range results {
		if !res.Valid {
			s.Invalid++
		}
	}
	return s
}

// Failed returns the invalid results, keeping their order.
func Failed(results []Result) []Result {
	var out []Result
	for _, res := range results {
		if !res.Valid {
			out = append(out, res)
		}
	}
	return out
}
