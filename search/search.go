// Search: depth-first enumeration of left-to-right operator sequences.
//
// The engine walks an index plus a running accumulator over the immutable
// operand slice, so sibling branches share nothing but read-only input:
//
//  1. acc starts at operands[0]; step i combines acc with operands[i].
//  2. Candidates are tried in priority order (Add, Mul, Concat) and the
//     walk returns on the first branch that ends with acc == target.
//  3. A branch whose value exceeds the target (Prune) or int64 enters the
//     "exceeded" state. With non-negative operands the only way back is
//     "* 0", so an exceeded branch dies unless zeroFrom says a zero operand
//     is still ahead. All ways of staying exceeded are equivalent, and the
//     first zero ahead dominates later ones, so each exceeded step explores
//     a single child.

package search

// engine holds per-call search state.
type engine struct {
	target     int64
	operands   []int64
	candidates []Operator
	prune      bool

	// zeroFrom[i] reports whether operands[i:] contains a zero.
	// len(zeroFrom) == len(operands)+1 and zeroFrom[len(operands)] == false.
	zeroFrom []bool

	// trail[i-1] is the operator between operands[i-1] and operands[i]
	// on the current path.
	trail []Operator
}

func newEngine(target int64, operands []int64, o Options) *engine {
	n := len(operands)
	e := &engine{
		target:     target,
		operands:   operands,
		candidates: o.candidates(),
		prune:      o.Prune,
		zeroFrom:   make([]bool, n+1),
		trail:      make([]Operator, n-1),
	}
	for i := n - 1; i >= 0; i-- {
		e.zeroFrom[i] = e.zeroFrom[i+1] || operands[i] == 0
	}

	return e
}

// exceeds reports whether v, exactly computed (ok) or overflowed (!ok),
// should be treated as past the target.
func (e *engine) exceeds(v int64, ok bool) bool {
	return !ok || (e.prune && v > e.target)
}

// walk reports whether acc, covering operands[:i], can be extended to the target.
func (e *engine) walk(i int, acc int64, exceeded bool) bool {
	if i == len(e.operands) {
		return !exceeded && acc == e.target
	}

	next := e.operands[i]
	if exceeded {
		if !e.zeroFrom[i] {
			return false
		}
		if next == 0 {
			e.trail[i-1] = Mul

			return e.walk(i+1, 0, false)
		}
		e.trail[i-1] = Add

		return e.walk(i+1, acc, true)
	}

	triedExceeded := false
	for _, op := range e.candidates {
		v, ok := op.Apply(acc, next)
		ex := e.exceeds(v, ok)
		if ex {
			if triedExceeded || !e.zeroFrom[i+1] {
				continue
			}
			triedExceeded = true
		}
		e.trail[i-1] = op
		if e.walk(i+1, v, ex) {
			return true
		}
	}

	return false
}

// Search looks for an operator sequence that turns operands into target.
//
// Operands must be non-negative; the equation parser guarantees this.
// An empty operand slice is never satisfiable. A single operand is
// satisfiable iff it equals target, whatever the options.
func Search(target int64, operands []int64, opts ...Option) Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(operands) == 0 {
		return Result{}
	}

	e := newEngine(target, operands, o)
	first := operands[0]
	if !e.walk(1, first, e.exceeds(first, true)) {
		return Result{}
	}

	return Result{
		Satisfiable: true,
		Operators:   append([]Operator{}, e.trail...),
	}
}

// IsSatisfiable reports whether some left-to-right combination of
// + and *, plus || when allowConcatenation is set, evaluates to target.
func IsSatisfiable(target int64, operands []int64, allowConcatenation bool) bool {
	return Search(target, operands, WithConcatenationEnabled(allowConcatenation)).Satisfiable
}
