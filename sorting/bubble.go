package sorting

import (
	"fmt"

	"github.com/algolens/algolens/core"
)

// Bubble — Bubble Sort
//
// Description:
//
//	Repeatedly steps through the array, comparing adjacent pairs and
//	swapping them when out of order. After pass p the largest p+1 values
//	occupy the tail, so the inner loop shrinks by one each pass. A pass with
//	no swap proves the array sorted, so the replay exits early.
//
// Trace shape:
//  1. "Initial Array" boundary step.
//  2. Per adjacent pair: a "Compare" step (compare highlights + arrow),
//     then a "Swap" step when the pair is exchanged.
//  3. A "Pass Complete" boundary after every outer pass, fixing the
//     pass's final position in the sorted marker set.
//  4. "Sorted!" terminal step with the final totals.
//
// Complexity: O(n²) comparisons worst case, O(n) on sorted input thanks to
// the early exit.
func Bubble(arr []int, opts ...Option) (core.Trace, error) {
	o := buildOptions(opts)
	if len(arr) == 0 {
		return nil, core.ErrEmptyInput
	}

	rec := core.NewRecorder(arr)
	emitInitial(rec, core.BubbleSort)

	n := rec.Len()
	var sorted []int
	for pass := 0; pass < n; pass++ {
		if err := canceled(o.Ctx); err != nil {
			return nil, err
		}

		swapped := false
		limit := n - 1 - pass
		for j := 0; j < limit; j++ {
			v := rec.Values()
			rec.CountCompare()
			rec.Emit(core.Snap{
				Label: "Compare",
				Highlights: core.Highlights{
					Compare: []int{j, j + 1},
					Sorted:  sorted,
				},
				Pointers:    core.Pointers{core.PointerI: pass, core.PointerJ: j},
				Arrows:      []core.MoveArrow{{From: j, To: j + 1, Kind: core.MoveCompare}},
				Explanation: fmt.Sprintf("Comparing %d and %d.", v[j], v[j+1]),
			})
			if v[j] > v[j+1] {
				rec.Swap(j, j+1)
				swapped = true
				v = rec.Values()
				rec.Emit(core.Snap{
					Label: "Swap",
					Highlights: core.Highlights{
						Swap:   []int{j, j + 1},
						Sorted: sorted,
					},
					Pointers: core.Pointers{core.PointerI: pass, core.PointerJ: j},
					Arrows: []core.MoveArrow{
						{From: j, To: j + 1, Kind: core.MoveSwap},
						{From: j + 1, To: j, Kind: core.MoveSwap},
					},
					Explanation: fmt.Sprintf("%d > %d, swapping.", v[j+1], v[j]),
				})
			}
		}

		rec.CountPass()
		if limit >= 0 {
			sorted = core.AddIndex(sorted, limit)
		}
		rec.Emit(core.Snap{
			Label:       core.LabelPassComplete,
			Highlights:  core.Highlights{Sorted: sorted},
			Pointers:    core.Pointers{core.PointerI: pass},
			Explanation: fmt.Sprintf("Pass %d complete; position %d is fixed.", pass+1, limit),
		})

		if !swapped {
			// no swap this pass: everything left of the fixed tail is
			// already in order
			break
		}
	}

	emitSorted(rec)
	return rec.Steps(), nil
}
