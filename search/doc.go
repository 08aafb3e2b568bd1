// Package search decides whether a sequence of operands can be combined,
// strictly left to right, into a target value.
//
// 🚀 What does it solve?
//
//	Given a target T and operands n1 n2 … nk, is there a choice of binary
//	operators o1 … o(k-1) such that
//
//	    ((n1 o1 n2) o2 n3) … o(k-1) nk == T
//
//	evaluated left to right with no operator precedence?
//
// ✨ Operators, tried in this order at every step:
//
//   - Add     a + b
//   - Mul     a * b
//   - Concat  a || b, the decimal digits of a followed by those of b
//     (12 || 345 == 12345). Only tried when concatenation is enabled.
//
// ⚙️ Usage:
//
//	ok := search.IsSatisfiable(156, []int64{15, 6}, true) // 15 || 6
//
//	res := search.Search(3267, []int64{81, 40, 27})
//	fmt.Println(res.Expression([]int64{81, 40, 27})) // 81 + 40 * 27
//
// Options:
//
//   - WithConcatenation / WithConcatenationEnabled: enable the third operator.
//   - WithPruning(false): disable the "accumulator already above target" cut.
//
// Arithmetic:
//
//	Operands must be non-negative. Every operator is then non-decreasing,
//	except multiplication by zero. Once the running value passes the target
//	the branch is abandoned, unless a zero operand is still ahead, in which
//	case only "* 0" can make progress. Overflowing int64 is handled the same
//	way: the true value is larger than any int64 target, so the result is
//	exact and never wraps.
//
// Complexity:
//
//   - Time:   O(b^(k-1)) worst case with b = 2 or 3 operators, usually far
//     less with pruning and first-success short-circuit.
//   - Memory: O(k) (recursion depth plus the witness trail).
package search
