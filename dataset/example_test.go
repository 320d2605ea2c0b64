package dataset_test

import (
	"fmt"
	"sort"

	"github.com/algolens/algolens/dataset"
)

// ExampleParseList shows the forgiving tokenizer: whitespace is
// trimmed and non-numeric tokens are dropped rather than rejected.
func ExampleParseList() {
	values, err := dataset.ParseList("23, 1, ten, 10, 5, 2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(values)
	fmt.Println("target:", dataset.ParseTarget("oops", values))
	// Output:
	// [23 1 10 5 2]
	// target: 23
}

// ExampleSorted locks the generator with a seed; the shape guarantee
// (non-decreasing) holds for any seed.
func ExampleSorted() {
	values, err := dataset.Sorted(
		dataset.WithSize(8),
		dataset.WithSeed(42),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("length:", len(values))
	fmt.Println("sorted:", sort.IntsAreSorted(values))
	// Output:
	// length: 8
	// sorted: true
}
