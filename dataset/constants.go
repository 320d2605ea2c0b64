// Package dataset shared defaults, kept in one place so generators,
// option constructors and tests agree on the same numbers.
package dataset

const (
	// DefaultSize is the array length used when WithSize is absent.
	DefaultSize = 12

	// MinSize is the smallest array any generator will produce.
	MinSize = 1

	// DefaultMinValue and DefaultMaxValue bound generated values when
	// WithValueRange is absent. The range is inclusive on both ends.
	DefaultMinValue = 1
	DefaultMaxValue = 99

	// DefaultSeed drives stochastic generators when WithSeed is absent.
	// A fixed default keeps ad-hoc runs reproducible.
	DefaultSeed = 1

	// DefaultSwapFraction is the share of adjacent pairs NearlySorted
	// perturbs: a value of 0.15 on a 20-element array disturbs 3 pairs.
	DefaultSwapFraction = 0.15

	// DefaultDistinct is the number of distinct values FewUnique draws
	// from when WithDistinct is absent.
	DefaultDistinct = 4
)

// Canonical generator names, used to prefix validation errors with the
// entry-point that rejected the parameters.
const (
	MethodRandom       = "Random"
	MethodSorted       = "Sorted"
	MethodReversed     = "Reversed"
	MethodNearlySorted = "NearlySorted"
	MethodFewUnique    = "FewUnique"
)
