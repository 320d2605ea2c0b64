package searching

import (
	"fmt"

	"github.com/algolens/algolens/core"
)

// Binary — Binary Search
//
// Description:
//
//	Probes the midpoint of the live range [low,high] on the sorted working
//	copy, halving the range after every miss. The terminal not-found
//	condition is low > high. Eliminated highlights track everything
//	outside the live range, one probe costs one comparison.
//
// Complexity: O(log n) comparisons.
func Binary(arr []int, target int, opts ...Option) (core.Trace, error) {
	o := buildOptions(opts)
	if len(arr) == 0 {
		return nil, core.ErrEmptyInput
	}

	rec := core.NewRecorder(arr)
	start(rec, core.BinarySearch, target, true)

	v := rec.Values()
	low, high := 0, rec.Len()-1
	for low <= high {
		if err := canceled(o.Ctx); err != nil {
			return nil, err
		}

		mid := low + (high-low)/2
		rec.CountCompare()
		rec.Emit(core.Snap{
			Label: "Probe Midpoint",
			Highlights: core.Highlights{
				Compare:    []int{mid},
				Eliminated: outside(rec.Len(), low, high),
			},
			Pointers: core.Pointers{
				core.PointerLow:  low,
				core.PointerMid:  mid,
				core.PointerHigh: high,
			},
			Explanation: fmt.Sprintf("Midpoint of %d..%d is %d: %d vs %d.", low, high, mid, v[mid], target),
		})

		switch {
		case v[mid] == target:
			emitFound(rec, mid, target)
			return rec.Steps(), nil
		case v[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}

		if low <= high {
			rec.Emit(core.Snap{
				Label: "Eliminate Half",
				Highlights: core.Highlights{
					Eliminated: outside(rec.Len(), low, high),
				},
				Pointers:    core.Pointers{core.PointerLow: low, core.PointerHigh: high},
				Explanation: fmt.Sprintf("Target must lie in %d..%d.", low, high),
			})
		}
	}

	emitNotFound(rec, target)
	return rec.Steps(), nil
}

// outside returns the ascending indices of [0,n) not inside [low,high].
func outside(n, low, high int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if i < low || i > high {
			out = append(out, i)
		}
	}
	return out
}
