package search

import (
	"math"
	"strconv"
	"strings"
)

// Operator is one binary operator applied between consecutive operands.
type Operator uint8

const (
	// Add combines a and b as a + b.
	Add Operator = iota
	// Mul combines a and b as a * b.
	Mul
	// Concat combines a and b by appending the decimal digits of b to a.
	Concat
)

// String returns the operator symbol.
func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Mul:
		return "*"
	case Concat:
		return "||"
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}

// Apply combines a and b. Both must be non-negative.
// ok is false when the exact result does not fit in int64.
func (op Operator) Apply(a, b int64) (v int64, ok bool) {
	switch op {
	case Add:
		return addChecked(a, b)
	case Mul:
		return mulChecked(a, b)
	case Concat:
		return ConcatDigits(a, b)
	default:
		return 0, false
	}
}

// Options configures a single search.
//
// AllowConcatenation – include Concat in the candidate set.
// Prune              – abandon branches whose value already exceeds the target.
//
//	Results are identical either way; Prune only affects speed.
type Options struct {
	AllowConcatenation bool
	Prune              bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns {AllowConcatenation: false, Prune: true}.
func DefaultOptions() Options {
	return Options{
		AllowConcatenation: false,
		Prune:              true,
	}
}

// WithConcatenation enables the Concat operator.
func WithConcatenation() Option {
	return func(o *Options) {
		o.AllowConcatenation = true
	}
}

// WithConcatenationEnabled sets AllowConcatenation explicitly.
func WithConcatenationEnabled(enabled bool) Option {
	return func(o *Options) {
		o.AllowConcatenation = enabled
	}
}

// WithPruning toggles the exceeded-target cut.
func WithPruning(enabled bool) Option {
	return func(o *Options) {
		o.Prune = enabled
	}
}

// candidates returns the operators to try, in priority order.
func (o Options) candidates() []Operator {
	if o.AllowConcatenation {
		return []Operator{Add, Mul, Concat}
	}

	return []Operator{Add, Mul}
}

// Result is the outcome of Search.
type Result struct {
	// Satisfiable reports whether any operator sequence reaches the target.
	Satisfiable bool

	// Operators is the first witness found, len(operands)-1 entries.
	// Nil when Satisfiable is false.
	Operators []Operator
}

// Expression renders operands interleaved with the witness operators,
// e.g. "81 + 40 * 27". It returns "" when r is not satisfiable or the
// operand count does not match.
func (r Result) Expression(operands []int64) string {
	if !r.Satisfiable || len(operands) != len(r.Operators)+1 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(operands[0], 10))
	for i, op := range r.Operators {
		sb.WriteByte(' ')
		sb.WriteString(op.String())
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(operands[i+1], 10))
	}

	return sb.String()
}

// Evaluate folds operands left to right with ops. It is the reference
// interpreter for a witness. ok is false on length mismatch or overflow.
func Evaluate(operands []int64, ops []Operator) (v int64, ok bool) {
	if len(operands) == 0 || len(ops) != len(operands)-1 {
		return 0, false
	}
	v = operands[0]
	for i, op := range ops {
		if v, ok = op.Apply(v, operands[i+1]); !ok {
			return 0, false
		}
	}

	return v, true
}

// Digits returns the number of decimal digits of n >= 0. Digits(0) == 1.
func Digits(n int64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}

	return d
}

// ConcatDigits appends the decimal digits of b to a: ConcatDigits(12, 34) == 1234.
// Both must be non-negative; ok is false on int64 overflow.
func ConcatDigits(a, b int64) (v int64, ok bool) {
	if a == 0 {
		// "0" followed by b reads back as b.
		return b, true
	}
	shift := int64(1)
	for range Digits(b) {
		if shift, ok = mulChecked(shift, 10); !ok {
			return 0, false
		}
	}
	if v, ok = mulChecked(a, shift); !ok {
		return 0, false
	}

	return addChecked(v, b)
}

func addChecked(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}

	return a + b, true
}

func mulChecked(a, b int64) (int64, bool) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, false
	}

	return a * b, true
}
