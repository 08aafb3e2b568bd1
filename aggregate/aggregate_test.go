package aggregate_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/calibrate/aggregate"
	"github.com/katalvlaran/calibrate/equation"
	"github.com/katalvlaran/calibrate/input"
	"github.com/katalvlaran/calibrate/internal/testutil"
	"github.com/katalvlaran/calibrate/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLines(t *testing.T) []string {
	t.Helper()
	lines, err := input.ReadFile("../testdata/sample.txt")
	require.NoError(t, err)
	require.Len(t, lines, 9)

	return lines
}

// TestRun_Sample reproduces the canonical answers.
func TestRun_Sample(t *testing.T) {
	totals, err := aggregate.Run(context.Background(), sampleLines(t),
		aggregate.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)
	assert.Equal(t, int64(3749), totals.Part1)
	assert.Equal(t, int64(11387), totals.Part2)
}

// TestRun_WorkersAndPruningAgree checks every configuration yields the same totals.
func TestRun_WorkersAndPruningAgree(t *testing.T) {
	lines := sampleLines(t)
	for _, workers := range []int{1, 2, 4, 16} {
		for _, prune := range []bool{true, false} {
			totals, err := aggregate.Run(context.Background(), lines,
				aggregate.WithWorkers(workers), aggregate.WithPruning(prune))
			require.NoError(t, err)
			assert.Equal(t, aggregate.Totals{Part1: 3749, Part2: 11387}, totals,
				"workers=%d prune=%v", workers, prune)
		}
	}
}

// TestRun_FormatErrorAborts verifies a bad line fails the whole run.
func TestRun_FormatErrorAborts(t *testing.T) {
	lines := append(sampleLines(t), "11 6")
	totals, err := aggregate.Run(context.Background(), lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, equation.ErrMissingSeparator)
	assert.Equal(t, aggregate.Totals{}, totals)

	var fe *equation.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 10, fe.Line)
}

// TestRun_Empty yields zero totals.
func TestRun_Empty(t *testing.T) {
	totals, err := aggregate.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, aggregate.Totals{}, totals)
}

// TestRun_Canceled stops before searching.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := aggregate.Run(ctx, sampleLines(t))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = aggregate.Run(ctx, sampleLines(t), aggregate.WithWorkers(4))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_BadWorkers rejects a non-positive worker count.
func TestRun_BadWorkers(t *testing.T) {
	_, err := aggregate.Run(context.Background(), sampleLines(t), aggregate.WithWorkers(0))
	assert.ErrorIs(t, err, aggregate.ErrOptionViolation)
}

// TestSum_SinglePass covers the parameterized pass directly.
func TestSum_SinglePass(t *testing.T) {
	eqs, err := equation.ParseLines(sampleLines(t))
	require.NoError(t, err)

	part1, err := aggregate.Sum(context.Background(), eqs, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3749), part1)

	part2, err := aggregate.Sum(context.Background(), eqs, true, aggregate.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, int64(11387), part2)
}

// TestSum_Overflow reports ErrSumOverflow instead of wrapping.
func TestSum_Overflow(t *testing.T) {
	top := int64(math.MaxInt64)
	a, err := equation.New(top, []int64{top})
	require.NoError(t, err)
	b, err := equation.New(1, []int64{1})
	require.NoError(t, err)

	_, err = aggregate.Sum(context.Background(), []equation.Equation{a, b}, false)
	assert.ErrorIs(t, err, aggregate.ErrSumOverflow)
}

// TestEvaluate_Reports keeps one report per line with matching witnesses.
func TestEvaluate_Reports(t *testing.T) {
	reports, totals, err := aggregate.Evaluate(context.Background(), sampleLines(t), aggregate.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, aggregate.Totals{Part1: 3749, Part2: 11387}, totals)
	require.Len(t, reports, 9)

	for i, r := range reports {
		assert.Equal(t, i+1, r.Line)
		if r.Plain.Satisfiable {
			assert.True(t, r.Concat.Satisfiable, "concatenation never loses a solution")
		}
		for _, res := range []search.Result{r.Plain, r.Concat} {
			if !res.Satisfiable {
				continue
			}
			v, ok := search.Evaluate(r.Equation.View(), res.Operators)
			require.True(t, ok)
			assert.Equal(t, r.Equation.Target, v)
		}
	}

	assert.Equal(t, "15 || 6", reports[3].Concat.Expression(reports[3].Equation.View()))
	assert.False(t, reports[3].Plain.Satisfiable)
}
