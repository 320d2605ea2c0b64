package sorting

import (
	"fmt"

	"github.com/algolens/algolens/core"
)

// Selection — Selection Sort
//
// Description:
//
//	For each slot i, scans the unsorted suffix for its minimum and swaps it
//	into place. Exactly one swap per pass at most, which makes the 3:1
//	swap/compare weighting of the work estimator visible in comparison mode.
//
// Trace shape: per slot a "Select Minimum" opener, a "Compare" step per
// scanned candidate, a "New Minimum" step whenever the running minimum
// moves, then either a "Swap" or an "In Place" closer. Terminal "Sorted!".
//
// Complexity: Θ(n²) comparisons, ≤ n−1 swaps.
func Selection(arr []int, opts ...Option) (core.Trace, error) {
	o := buildOptions(opts)
	if len(arr) == 0 {
		return nil, core.ErrEmptyInput
	}

	rec := core.NewRecorder(arr)
	emitInitial(rec, core.SelectionSort)

	n := rec.Len()
	var sorted []int
	for i := 0; i < n-1; i++ {
		if err := canceled(o.Ctx); err != nil {
			return nil, err
		}

		minIdx := i
		rec.Emit(core.Snap{
			Label:       "Select Minimum",
			Highlights:  core.Highlights{Key: []int{i}, Sorted: sorted},
			Pointers:    core.Pointers{core.PointerI: i, core.PointerKey: minIdx},
			Explanation: fmt.Sprintf("Scanning for the minimum of positions %d..%d.", i, n-1),
		})

		for j := i + 1; j < n; j++ {
			v := rec.Values()
			rec.CountCompare()
			rec.Emit(core.Snap{
				Label: "Compare",
				Highlights: core.Highlights{
					Compare: []int{j},
					Key:     []int{minIdx},
					Sorted:  sorted,
				},
				Pointers:    core.Pointers{core.PointerI: i, core.PointerJ: j, core.PointerKey: minIdx},
				Arrows:      []core.MoveArrow{{From: j, To: minIdx, Kind: core.MoveCompare}},
				Explanation: fmt.Sprintf("Comparing %d with current minimum %d.", v[j], v[minIdx]),
			})
			if v[j] < v[minIdx] {
				minIdx = j
				rec.Emit(core.Snap{
					Label:       "New Minimum",
					Highlights:  core.Highlights{Key: []int{minIdx}, Sorted: sorted},
					Pointers:    core.Pointers{core.PointerI: i, core.PointerJ: j, core.PointerKey: minIdx},
					Explanation: fmt.Sprintf("%d is the new minimum.", v[minIdx]),
				})
			}
		}

		rec.CountPass()
		sorted = core.AddIndex(sorted, i)
		if minIdx != i {
			rec.Swap(i, minIdx)
			v := rec.Values()
			rec.Emit(core.Snap{
				Label:      "Swap",
				Highlights: core.Highlights{Swap: []int{i, minIdx}, Sorted: sorted},
				Pointers:   core.Pointers{core.PointerI: i, core.PointerKey: minIdx},
				Arrows: []core.MoveArrow{
					{From: minIdx, To: i, Kind: core.MoveSwap},
					{From: i, To: minIdx, Kind: core.MoveSwap},
				},
				Explanation: fmt.Sprintf("Swapping minimum %d into position %d.", v[i], i),
			})
		} else {
			rec.Emit(core.Snap{
				Label:       "In Place",
				Highlights:  core.Highlights{Sorted: sorted},
				Pointers:    core.Pointers{core.PointerI: i},
				Explanation: fmt.Sprintf("Position %d already holds its minimum.", i),
			})
		}
	}

	emitSorted(rec)
	return rec.Steps(), nil
}
