package sorting

import (
	"fmt"

	"github.com/algolens/algolens/core"
)

// Insertion — Insertion Sort
//
// Description:
//
//	Grows a sorted prefix one element at a time: the next key is extracted,
//	larger prefix values shift right one slot each, and the key drops into
//	the gap. Shifts are one-way movements, so they are emitted with
//	shift-kind arrows and counted in the swap metric (the work estimator
//	treats any data movement as swap-class cost).
//
// Trace shape: per key an "Extract Key" opener, a "Compare" step per probed
// prefix value, a "Shift" step per displacement, then "Insert Key" (or
// "Key In Place" when nothing moved). Terminal "Sorted!".
//
// Complexity: O(n²) worst case, O(n) on sorted input.
func Insertion(arr []int, opts ...Option) (core.Trace, error) {
	o := buildOptions(opts)
	if len(arr) == 0 {
		return nil, core.ErrEmptyInput
	}

	rec := core.NewRecorder(arr)
	emitInitial(rec, core.InsertionSort)

	n := rec.Len()
	for i := 1; i < n; i++ {
		if err := canceled(o.Ctx); err != nil {
			return nil, err
		}

		key := rec.Values()[i]
		rec.Emit(core.Snap{
			Label:       "Extract Key",
			Highlights:  core.Highlights{Key: []int{i}, Sorted: core.Range(0, i-1)},
			Pointers:    core.Pointers{core.PointerI: i, core.PointerKey: i},
			Explanation: fmt.Sprintf("Extracting key %d; positions 0..%d are sorted.", key, i-1),
		})

		j := i - 1
		for j >= 0 {
			v := rec.Values()
			rec.CountCompare()
			rec.Emit(core.Snap{
				Label: "Compare",
				Highlights: core.Highlights{
					Compare: []int{j},
					Key:     []int{j + 1},
				},
				Pointers:    core.Pointers{core.PointerI: i, core.PointerJ: j, core.PointerKey: j + 1},
				Arrows:      []core.MoveArrow{{From: j, To: j + 1, Kind: core.MoveCompare}},
				Explanation: fmt.Sprintf("Comparing %d with key %d.", v[j], key),
			})
			if v[j] <= key {
				break
			}
			rec.Assign(j+1, v[j])
			rec.Emit(core.Snap{
				Label: "Shift",
				Highlights: core.Highlights{
					Shift: []int{j, j + 1},
					Key:   []int{j},
				},
				Pointers:    core.Pointers{core.PointerI: i, core.PointerJ: j, core.PointerKey: j},
				Arrows:      []core.MoveArrow{{From: j, To: j + 1, Kind: core.MoveShift}},
				Explanation: fmt.Sprintf("Shifting %d right to make room.", v[j]),
			})
			j--
		}

		rec.CountPass()
		if j+1 != i {
			rec.Assign(j+1, key)
			rec.Emit(core.Snap{
				Label:       "Insert Key",
				Highlights:  core.Highlights{Swap: []int{j + 1}, Sorted: core.Range(0, i)},
				Pointers:    core.Pointers{core.PointerI: i, core.PointerKey: j + 1},
				Arrows:      []core.MoveArrow{{From: i, To: j + 1, Kind: core.MoveShift}},
				Explanation: fmt.Sprintf("Inserting key %d at position %d.", key, j+1),
			})
		} else {
			rec.Emit(core.Snap{
				Label:       "Key In Place",
				Highlights:  core.Highlights{Sorted: core.Range(0, i)},
				Pointers:    core.Pointers{core.PointerI: i, core.PointerKey: i},
				Explanation: fmt.Sprintf("Key %d is already in position.", key),
			})
		}
	}

	emitSorted(rec)
	return rec.Steps(), nil
}
