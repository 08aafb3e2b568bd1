package search_test

import (
	"testing"

	"github.com/katalvlaran/calibrate/search"
)

// benchmarkSearch runs an unsatisfiable search of n operands, the worst case
// for first-success short-circuit.
func benchmarkSearch(b *testing.B, n int, opts ...search.Option) {
	operands := make([]int64, n)
	for i := range operands {
		operands[i] = int64(i%9 + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.Search(-1, operands, opts...)
	}
}

func BenchmarkSearch_AddMul12(b *testing.B) {
	benchmarkSearch(b, 12, search.WithPruning(false))
}

func BenchmarkSearch_AddMulConcat12(b *testing.B) {
	benchmarkSearch(b, 12, search.WithConcatenation(), search.WithPruning(false))
}

// BenchmarkSearch_Pruned12 shows the cut on a target every branch overshoots.
func BenchmarkSearch_Pruned12(b *testing.B) {
	benchmarkSearch(b, 12, search.WithConcatenation())
}
