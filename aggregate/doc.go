// Package aggregate drives the equation search over a whole puzzle input.
//
// Every line is parsed once; the parsed equations are then searched twice,
// first with {+, *} and then with {+, *, ||}. The targets of satisfiable
// equations are summed per pass into Totals.Part1 and Totals.Part2.
//
// A malformed line aborts the run with the parser's *equation.FormatError;
// there is no skip or partial-result policy here.
//
// Options:
//
//   - WithWorkers(n): search up to n equations concurrently. Results are
//     combined in input order, so totals and reports do not depend on n.
//   - WithPruning(bool): forwarded to search.WithPruning.
//   - WithLogger(*slog.Logger): per-equation debug records and a per-pass
//     summary. Defaults to a discarding logger.
//
// Usage:
//
//	totals, err := aggregate.Run(ctx, lines)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(totals.Part1)
//	fmt.Println(totals.Part2)
package aggregate
