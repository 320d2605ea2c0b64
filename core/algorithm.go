package core

import "fmt"

// Algorithm identifies one member of the closed enumeration of supported
// algorithms: six sorting and four searching. Switching identifiers
// invalidates any trace built for the previous one.
type Algorithm string

const (
	// BubbleSort — in-place with early exit on a swap-free pass.
	BubbleSort Algorithm = "bubble"
	// SelectionSort — in-place minimum-selection.
	SelectionSort Algorithm = "selection"
	// InsertionSort — in-place with key extraction and shifting.
	InsertionSort Algorithm = "insertion"
	// MergeSort — top-down recursive split with explicit merges.
	MergeSort Algorithm = "merge"
	// QuickSort — Lomuto partition, pivot = last element of the range.
	QuickSort Algorithm = "quick"
	// HeapSort — in-place binary max-heap.
	HeapSort Algorithm = "heap"

	// LinearSearch — left-to-right scan.
	LinearSearch Algorithm = "linear"
	// BinarySearch — halving on an internally sorted working copy.
	BinarySearch Algorithm = "binary"
	// JumpSearch — block jumps of size √n, then a linear scan back.
	JumpSearch Algorithm = "jump"
	// InterpolationSearch — value-proportional probe positioning.
	InterpolationSearch Algorithm = "interpolation"
)

// SortingAlgorithms lists the sorting identifiers in presentation order.
var SortingAlgorithms = []Algorithm{
	BubbleSort, SelectionSort, InsertionSort, MergeSort, QuickSort, HeapSort,
}

// SearchAlgorithms lists the searching identifiers in presentation order.
var SearchAlgorithms = []Algorithm{
	LinearSearch, BinarySearch, JumpSearch, InterpolationSearch,
}

// ParseAlgorithm maps an identifier string onto the enumeration.
// Returns ErrUnknownAlgorithm for anything outside it.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(s)
	switch a {
	case BubbleSort, SelectionSort, InsertionSort, MergeSort, QuickSort, HeapSort,
		LinearSearch, BinarySearch, JumpSearch, InterpolationSearch:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// IsSearch reports whether a is a searching algorithm (and therefore
// requires a target value).
func (a Algorithm) IsSearch() bool {
	switch a {
	case LinearSearch, BinarySearch, JumpSearch, InterpolationSearch:
		return true
	}
	return false
}

// Title returns the human-readable display name.
func (a Algorithm) Title() string {
	switch a {
	case BubbleSort:
		return "Bubble Sort"
	case SelectionSort:
		return "Selection Sort"
	case InsertionSort:
		return "Insertion Sort"
	case MergeSort:
		return "Merge Sort"
	case QuickSort:
		return "Quick Sort"
	case HeapSort:
		return "Heap Sort"
	case LinearSearch:
		return "Linear Search"
	case BinarySearch:
		return "Binary Search"
	case JumpSearch:
		return "Jump Search"
	case InterpolationSearch:
		return "Interpolation Search"
	default:
		return string(a)
	}
}
