package searching

import (
	"fmt"

	"github.com/algolens/algolens/core"
)

// Interpolation — Interpolation Search
//
// Description:
//
//	Estimates where the target should sit inside the live range by linear
//	interpolation over the values at its bounds:
//
//	  pos = low + ⌊(target − arr[low]) · (high − low) / (arr[high] − arr[low])⌋
//
//	clamped into [low,high]. The degenerate slope arr[high] == arr[low]
//	(all remaining values equal) cannot interpolate, so it falls back to
//	checking arr[low] directly — a designed branch, not an error. The loop
//	also exits early once the target falls outside the value range of the
//	live window, since a sorted array cannot hold it elsewhere.
//
// Complexity: O(log log n) comparisons on uniformly distributed values,
// O(n) worst case.
func Interpolation(arr []int, target int, opts ...Option) (core.Trace, error) {
	o := buildOptions(opts)
	if len(arr) == 0 {
		return nil, core.ErrEmptyInput
	}

	rec := core.NewRecorder(arr)
	start(rec, core.InterpolationSearch, target, true)

	v := rec.Values()
	low, high := 0, rec.Len()-1
	for low <= high && target >= v[low] && target <= v[high] {
		if err := canceled(o.Ctx); err != nil {
			return nil, err
		}

		if v[high] == v[low] {
			// degenerate slope: every remaining value is v[low]
			rec.CountCompare()
			rec.Emit(core.Snap{
				Label: "Degenerate Slope",
				Highlights: core.Highlights{
					Compare:    []int{low},
					Eliminated: outside(rec.Len(), low, high),
				},
				Pointers:    core.Pointers{core.PointerLow: low, core.PointerHigh: high},
				Explanation: fmt.Sprintf("All values in %d..%d equal %d; checking directly.", low, high, v[low]),
			})
			if v[low] == target {
				emitFound(rec, low, target)
				return rec.Steps(), nil
			}
			break
		}

		pos := low + (target-v[low])*(high-low)/(v[high]-v[low])
		if pos < low {
			pos = low
		}
		if pos > high {
			pos = high
		}

		rec.CountCompare()
		rec.Emit(core.Snap{
			Label: "Probe",
			Highlights: core.Highlights{
				Compare:    []int{pos},
				Eliminated: outside(rec.Len(), low, high),
			},
			Pointers: core.Pointers{
				core.PointerLow:  low,
				core.PointerPos:  pos,
				core.PointerHigh: high,
			},
			Explanation: fmt.Sprintf("Interpolated position %d: %d vs %d.", pos, v[pos], target),
		})

		switch {
		case v[pos] == target:
			emitFound(rec, pos, target)
			return rec.Steps(), nil
		case v[pos] < target:
			low = pos + 1
		default:
			high = pos - 1
		}

		if low <= high {
			rec.Emit(core.Snap{
				Label: "Narrow Range",
				Highlights: core.Highlights{
					Eliminated: outside(rec.Len(), low, high),
				},
				Pointers:    core.Pointers{core.PointerLow: low, core.PointerHigh: high},
				Explanation: fmt.Sprintf("Target can only lie in %d..%d.", low, high),
			})
		}
	}

	emitNotFound(rec, target)
	return rec.Steps(), nil
}
