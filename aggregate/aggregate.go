package aggregate

import (
	"context"
	"log/slog"
	"math"

	"github.com/katalvlaran/calibrate/equation"
	"github.com/katalvlaran/calibrate/search"
	"golang.org/x/sync/errgroup"
)

// pass names one operator set in log records.
func pass(allowConcat bool) string {
	if allowConcat {
		return "part2"
	}

	return "part1"
}

// solve searches every equation with one operator set and returns the
// results in input order.
func solve(ctx context.Context, eqs []equation.Equation, allowConcat bool, o Options) ([]search.Result, error) {
	results := make([]search.Result, len(eqs))
	one := func(i int) {
		eq := eqs[i]
		results[i] = search.Search(eq.Target, eq.View(),
			search.WithConcatenationEnabled(allowConcat),
			search.WithPruning(o.Prune),
		)
		o.Logger.Debug("equation searched",
			slog.String("pass", pass(allowConcat)),
			slog.Int("index", i),
			slog.Int64("target", eq.Target),
			slog.Int("operands", eq.Len()),
			slog.Bool("satisfiable", results[i].Satisfiable),
		)
	}

	if o.Workers <= 1 {
		for i := range eqs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			one(i)
		}

		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range eqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			one(i)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// total adds the targets of satisfiable results with overflow checks.
func total(eqs []equation.Equation, results []search.Result) (int64, int, error) {
	var sum int64
	matched := 0
	for i, res := range results {
		if !res.Satisfiable {
			continue
		}
		t := eqs[i].Target
		if (t > 0 && sum > math.MaxInt64-t) || (t < 0 && sum < math.MinInt64-t) {
			return 0, 0, ErrSumOverflow
		}
		sum += t
		matched++
	}

	return sum, matched, nil
}

func sumPass(ctx context.Context, eqs []equation.Equation, allowConcat bool, o Options) (int64, []search.Result, error) {
	results, err := solve(ctx, eqs, allowConcat, o)
	if err != nil {
		return 0, nil, err
	}
	sum, matched, err := total(eqs, results)
	if err != nil {
		return 0, nil, err
	}
	o.Logger.Info("pass complete",
		slog.String("pass", pass(allowConcat)),
		slog.Int("equations", len(eqs)),
		slog.Int("satisfiable", matched),
		slog.Int64("sum", sum),
	)

	return sum, results, nil
}

// Sum returns the sum of targets of the equations satisfiable with + and *,
// plus || when allowConcat is set.
func Sum(ctx context.Context, eqs []equation.Equation, allowConcat bool, opts ...Option) (int64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	sum, _, err := sumPass(ctx, eqs, allowConcat, o)

	return sum, err
}

// Run parses lines and computes both totals. The first malformed line
// aborts the run with its *equation.FormatError.
func Run(ctx context.Context, lines []string, opts ...Option) (Totals, error) {
	_, totals, err := evaluate(ctx, lines, false, opts)

	return totals, err
}

// Evaluate is Run that also returns one Report per line, in input order.
func Evaluate(ctx context.Context, lines []string, opts ...Option) ([]Report, Totals, error) {
	return evaluate(ctx, lines, true, opts)
}

func evaluate(ctx context.Context, lines []string, keep bool, opts []Option) ([]Report, Totals, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, Totals{}, err
	}

	eqs, err := equation.ParseLines(lines)
	if err != nil {
		o.Logger.Debug("parse failed", slog.Any("err", err))

		return nil, Totals{}, err
	}

	var totals Totals
	part1, plain, err := sumPass(ctx, eqs, false, o)
	if err != nil {
		return nil, Totals{}, err
	}
	part2, concat, err := sumPass(ctx, eqs, true, o)
	if err != nil {
		return nil, Totals{}, err
	}
	totals.Part1, totals.Part2 = part1, part2

	if !keep {
		return nil, totals, nil
	}
	reports := make([]Report, len(eqs))
	for i, eq := range eqs {
		reports[i] = Report{
			Line:     i + 1,
			Equation: eq,
			Plain:    plain[i],
			Concat:   concat[i],
		}
	}

	return reports, totals, nil
}
