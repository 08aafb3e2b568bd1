package search_test

import (
	"fmt"

	"github.com/katalvlaran/calibrate/search"
)

// ExampleIsSatisfiable contrasts the two operator sets on "156: 15 6".
func ExampleIsSatisfiable() {
	fmt.Println(search.IsSatisfiable(156, []int64{15, 6}, false))
	fmt.Println(search.IsSatisfiable(156, []int64{15, 6}, true))
	// Output:
	// false
	// true
}

// ExampleSearch prints the first operator sequence found.
func ExampleSearch() {
	operands := []int64{6, 8, 6, 15}
	res := search.Search(7290, operands, search.WithConcatenation())
	fmt.Println(res.Satisfiable, res.Expression(operands))
	// Output:
	// true 6 * 8 || 6 * 15
}
