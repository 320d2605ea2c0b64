// Package core defines shared label constants so instrumenters, tests and
// consumers agree on the exact boundary-step spelling.
package core

//-----------------------------------------------------------------------------
// Boundary Step Labels
//   every instrumenter opens and closes its trace with one of these.
//-----------------------------------------------------------------------------

const (
	// LabelInitialArray labels the opening step of every sorting trace.
	LabelInitialArray = "Initial Array"

	// LabelSorted labels the terminal step of every sorting trace.
	LabelSorted = "Sorted!"

	// LabelStartSearch labels the opening step of every search trace.
	LabelStartSearch = "Start Search"

	// LabelFound labels the terminal step of a successful search.
	LabelFound = "Found!"

	// LabelNotFound labels the terminal step of an unsuccessful search.
	LabelNotFound = "Not Found"

	// LabelPassComplete labels the boundary step bubble sort emits after
	// each completed outer pass.
	LabelPassComplete = "Pass Complete"
)

//-----------------------------------------------------------------------------
// Pointer Names
//   canonical keys of the Step.Pointers map, to avoid sprinkling string
//   literals through the instrumenters.
//-----------------------------------------------------------------------------

const (
	// PointerI is the generic outer-loop index pointer.
	PointerI = "i"
	// PointerJ is the generic inner-loop index pointer.
	PointerJ = "j"
	// PointerLow marks the lower bound of the active range.
	PointerLow = "low"
	// PointerHigh marks the upper bound of the active range.
	PointerHigh = "high"
	// PointerMid marks a midpoint probe.
	PointerMid = "mid"
	// PointerPivot marks the pivot position in quick sort.
	PointerPivot = "pivot"
	// PointerKey marks the held key in insertion sort.
	PointerKey = "key"
	// PointerPos marks the probe position of interpolation search.
	PointerPos = "pos"
)
