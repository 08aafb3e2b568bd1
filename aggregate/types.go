package aggregate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/calibrate/equation"
	"github.com/katalvlaran/calibrate/search"
)

// Sentinel errors.
var (
	// ErrSumOverflow indicates a running total left the int64 range.
	ErrSumOverflow = errors.New("aggregate: sum of targets overflows int64")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("aggregate: invalid option supplied")
)

// Totals holds the two calibration sums.
type Totals struct {
	// Part1 sums targets reachable with + and *.
	Part1 int64 `json:"part1"`
	// Part2 sums targets reachable with +, * and ||.
	Part2 int64 `json:"part2"`
}

// Report is the per-equation outcome of both passes.
type Report struct {
	Line     int
	Equation equation.Equation
	Plain    search.Result // + and *
	Concat   search.Result // +, * and ||
}

// Options configures a run.
type Options struct {
	// Workers bounds concurrent searches. 1 means sequential.
	Workers int

	// Prune enables the exceeded-target cut in the search.
	Prune bool

	// Logger receives debug and info records.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures a run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns sequential, pruned, silent options.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Prune:   true,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers sets the number of concurrent searches.
//
//	n >= 1: at most n equations are searched at once
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithPruning toggles the search cut; results are unaffected.
func WithPruning(enabled bool) Option {
	return func(o *Options) {
		o.Prune = enabled
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
