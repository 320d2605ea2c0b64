// Package dataset array generators.
//
// Shape guarantees (per generator):
//   - Random:       values ∼ U[min,max], no ordering promise.
//   - Sorted:       non-decreasing.
//   - Reversed:     non-increasing.
//   - NearlySorted: non-decreasing except for ⌈swapFrac·(n-1)⌉ adjacent
//     swaps at seeded positions.
//   - FewUnique:    values drawn from a pool of `distinct` candidates.
//
// All generators share the same resolution path (newConfig) and the
// same validation (checkConfig); they return fresh slices the caller
// owns outright.
package dataset

import (
	"fmt"
	"math/rand"
	"sort"
)

// checkConfig validates the resolved configuration on behalf of the
// named generator. O(1) time and space.
func checkConfig(method string, cfg config) error {
	if cfg.size < MinSize {
		return fmt.Errorf("%s: size %d: %w", method, cfg.size, ErrBadSize)
	}
	if cfg.minValue > cfg.maxValue {
		return fmt.Errorf("%s: range [%d,%d]: %w", method, cfg.minValue, cfg.maxValue, ErrBadRange)
	}

	return nil
}

// draw returns one uniform value in [cfg.minValue, cfg.maxValue].
func draw(rng *rand.Rand, cfg config) int {
	return cfg.minValue + rng.Intn(cfg.maxValue-cfg.minValue+1)
}

// Random builds an array of uniform values with no ordering promise.
// Complexity: O(n) time, O(n) space.
func Random(opts ...Option) ([]int, error) {
	cfg, rng := newConfig(opts...)
	if err := checkConfig(MethodRandom, cfg); err != nil {
		return nil, err
	}

	out := make([]int, cfg.size)
	for i := range out {
		out[i] = draw(rng, cfg)
	}

	return out, nil
}

// Sorted builds a non-decreasing array: uniform draws, then sorted.
// Complexity: O(n log n) time, O(n) space.
func Sorted(opts ...Option) ([]int, error) {
	cfg, rng := newConfig(opts...)
	if err := checkConfig(MethodSorted, cfg); err != nil {
		return nil, err
	}

	out := make([]int, cfg.size)
	for i := range out {
		out[i] = draw(rng, cfg)
	}
	sort.Ints(out)

	return out, nil
}

// Reversed builds a non-increasing array: Sorted, flipped in place.
// Complexity: O(n log n) time, O(n) space.
func Reversed(opts ...Option) ([]int, error) {
	cfg, rng := newConfig(opts...)
	if err := checkConfig(MethodReversed, cfg); err != nil {
		return nil, err
	}

	out := make([]int, cfg.size)
	for i := range out {
		out[i] = draw(rng, cfg)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out, nil
}

// NearlySorted builds a sorted array, then swaps a seeded selection of
// adjacent pairs. The number of disturbed pairs is ⌈swapFrac·(n-1)⌉,
// so small arrays still get at least one swap for any positive
// fraction. Complexity: O(n log n) time, O(n) space.
func NearlySorted(opts ...Option) ([]int, error) {
	cfg, rng := newConfig(opts...)
	if err := checkConfig(MethodNearlySorted, cfg); err != nil {
		return nil, err
	}

	out := make([]int, cfg.size)
	for i := range out {
		out[i] = draw(rng, cfg)
	}
	sort.Ints(out)

	if cfg.size < 2 || cfg.swapFrac == 0 {
		return out, nil
	}
	swaps := int(cfg.swapFrac * float64(cfg.size-1))
	if swaps == 0 {
		swaps = 1
	}
	for s := 0; s < swaps; s++ {
		i := rng.Intn(cfg.size - 1)
		out[i], out[i+1] = out[i+1], out[i]
	}

	return out, nil
}

// FewUnique builds an array whose values come from a small pool of
// `distinct` candidates, the classic worst-ish case for naive quicksort
// partitioning. Complexity: O(n + k) time, O(n + k) space.
func FewUnique(opts ...Option) ([]int, error) {
	cfg, rng := newConfig(opts...)
	if err := checkConfig(MethodFewUnique, cfg); err != nil {
		return nil, err
	}

	pool := make([]int, cfg.distinct)
	for i := range pool {
		pool[i] = draw(rng, cfg)
	}
	out := make([]int, cfg.size)
	for i := range out {
		out[i] = pool[rng.Intn(len(pool))]
	}

	return out, nil
}
