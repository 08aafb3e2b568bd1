package equation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse converts one "<target>: <n1> ... <nk>" line into an Equation.
// All failures are returned as *FormatError.
func Parse(line string) (Equation, error) {
	head, tail, ok := strings.Cut(line, Separator)
	if !ok {
		return Equation{}, &FormatError{Text: line, Err: ErrMissingSeparator}
	}

	target, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return Equation{}, &FormatError{Text: line, Err: fmt.Errorf("%w: %w", ErrInvalidTarget, err)}
	}

	fields := strings.Fields(tail)
	if len(fields) == 0 {
		return Equation{}, &FormatError{Text: line, Err: ErrNoOperands}
	}

	operands := make([]int64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return Equation{}, &FormatError{Text: line, Err: fmt.Errorf("%w: %w", ErrInvalidOperand, err)}
		}
		if v < 0 {
			return Equation{}, &FormatError{Text: line, Err: fmt.Errorf("%w: %d", ErrNegativeOperand, v)}
		}
		operands[i] = v
	}

	return Equation{Target: target, operands: operands}, nil
}

// ParseLines parses lines in order and stops at the first failure.
// The returned *FormatError carries the 1-based line number.
func ParseLines(lines []string) ([]Equation, error) {
	eqs := make([]Equation, 0, len(lines))
	for i, line := range lines {
		eq, err := Parse(line)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Line = i + 1
			}

			return nil, err
		}
		eqs = append(eqs, eq)
	}

	return eqs, nil
}
