package equation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator divides the target from the operand list.
const Separator = ": "

// Sentinel errors wrapped by FormatError.
var (
	// ErrMissingSeparator indicates the line has no ": " between target and operands.
	ErrMissingSeparator = errors.New("equation: missing \": \" separator")

	// ErrInvalidTarget indicates the target is not a base-10 int64.
	ErrInvalidTarget = errors.New("equation: target is not a valid integer")

	// ErrInvalidOperand indicates an operand token is not a base-10 int64.
	ErrInvalidOperand = errors.New("equation: operand is not a valid integer")

	// ErrNoOperands indicates the operand list is empty.
	ErrNoOperands = errors.New("equation: at least one operand is required")

	// ErrNegativeOperand indicates an operand below zero.
	ErrNegativeOperand = errors.New("equation: operands must be non-negative")
)

// FormatError reports a line that could not be parsed.
type FormatError struct {
	// Line is the 1-based input line number, or 0 when unknown.
	Line int
	// Text is the offending input.
	Text string
	// Err is one of the package sentinels, possibly wrapping a strconv error.
	Err error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("%q: %v", e.Text, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Equation is a target value and the ordered operands that must reach it.
// The zero value is not valid; build one with Parse or New.
type Equation struct {
	Target   int64
	operands []int64
}

// New builds an Equation from a target and a copy of operands.
// It applies the same validation as Parse.
func New(target int64, operands []int64) (Equation, error) {
	text := Format(target, operands)
	if len(operands) == 0 {
		return Equation{}, &FormatError{Text: text, Err: ErrNoOperands}
	}
	for _, v := range operands {
		if v < 0 {
			return Equation{}, &FormatError{Text: text, Err: ErrNegativeOperand}
		}
	}

	return Equation{Target: target, operands: append([]int64(nil), operands...)}, nil
}

// Operands returns a copy of the operand sequence.
func (e Equation) Operands() []int64 {
	return append([]int64(nil), e.operands...)
}

// View returns the operand sequence without copying. Callers must not modify it.
func (e Equation) View() []int64 { return e.operands }

// Len reports the number of operands.
func (e Equation) Len() int { return len(e.operands) }

// String renders the equation in input form.
func (e Equation) String() string { return Format(e.Target, e.operands) }

// Format joins operands with single spaces and prefixes "<target>: ".
func Format(target int64, operands []int64) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(target, 10))
	sb.WriteString(Separator)
	for i, v := range operands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}

	return sb.String()
}
