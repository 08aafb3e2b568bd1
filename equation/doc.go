// Package equation parses and formats calibration equations.
//
// An equation is one line of puzzle input:
//
//	<target>: <n1> <n2> ... <nk>
//
// The target and every operand are base-10 int64 values. Operands are
// separated by whitespace and must be non-negative; at least one operand
// is required.
//
// Errors:
//
//   - Every failure is a *FormatError wrapping one of the sentinels
//     ErrMissingSeparator, ErrInvalidTarget, ErrInvalidOperand,
//     ErrNoOperands or ErrNegativeOperand. Match with errors.Is / errors.As.
//
// Usage:
//
//	eq, err := equation.Parse("190: 10 19")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(eq.Target, eq.Operands()) // 190 [10 19]
//
// Format is the inverse of Parse: Parse(Format(t, ops)) reproduces t and ops.
package equation
