// Package calibrate finds which calibration equations can be made true by
// inserting operators between their operands.
//
// 🚀 What is calibrate?
//
//	Each equation is a target and an ordered list of operands:
//
//	    3267: 81 40 27
//
//	The operands are combined strictly left to right, with no operator
//	precedence, using
//		• addition        a + b
//		• multiplication  a * b
//		• concatenation   a || b   (12 || 34 == 1234, optional)
//
//	81 + 40 * 27 reads as (81 + 40) * 27 == 3267, so the equation holds.
//
// ✨ Packages:
//
//	equation/      parse and format "<target>: <n1> <n2> ..." lines
//	search/        depth-first operator search with pruning and witnesses
//	aggregate/     parse a whole input once, sum satisfiable targets per
//	               operator set, optional bounded fan-out
//	input/         read input lines from a file or stdin
//	cmd/calibrate  CLI: solve, check, version
//
// Quick example:
//
//	ok := search.IsSatisfiable(156, []int64{15, 6}, true) // 15 || 6
//
//	totals, err := aggregate.Run(ctx, lines)
//	// totals.Part1: + and * only
//	// totals.Part2: + * and ||
//
//	go install github.com/katalvlaran/calibrate/cmd/calibrate@latest
package calibrate
