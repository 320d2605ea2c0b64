package sorting

import (
	"fmt"

	"github.com/algolens/algolens/core"
)

// Quick — Quick Sort (Lomuto partition)
//
// Description:
//
//	Partitions the active range [low,high] around its last element. The
//	pivot's final index is fixed only after the partition loop completes:
//	the replay emits a "Placement Decided" step first, then the "Place
//	Pivot" swap that executes it. Indices outside the active range are
//	marked eliminated so a consumer can freeze untouched regions, and
//	fixed pivot positions accumulate in a persistent sorted-style marker
//	set — a fixed position is never re-marked eliminated.
//
// Trace shape: per partition a "Choose Pivot" opener, a "Compare" step per
// scanned element, a "Swap" per exchange, "Placement Decided", optionally
// "Place Pivot", and a "Pivot Fixed" closer. Passes stays 0. Terminal
// "Sorted!".
//
// Complexity: O(n·log n) expected, O(n²) worst case (sorted input with the
// last-element pivot).
func Quick(arr []int, opts ...Option) (core.Trace, error) {
	o := buildOptions(opts)
	if len(arr) == 0 {
		return nil, core.ErrEmptyInput
	}

	rec := core.NewRecorder(arr)
	emitInitial(rec, core.QuickSort)

	n := rec.Len()
	var fixed []int

	// frozen returns the indices outside [low,high] that are not already
	// fixed pivot positions.
	frozen := func(low, high int) []int {
		var out []int
		for i := 0; i < n; i++ {
			if i >= low && i <= high {
				continue
			}
			if core.ContainsIndex(fixed, i) {
				continue
			}
			out = append(out, i)
		}
		return out
	}

	var sortRange func(low, high int) error
	sortRange = func(low, high int) error {
		if low > high {
			return nil
		}
		if err := canceled(o.Ctx); err != nil {
			return err
		}
		if low == high {
			fixed = core.AddIndex(fixed, low)
			rec.Emit(core.Snap{
				Label:       "Pivot Fixed",
				Highlights:  core.Highlights{Sorted: fixed, Eliminated: frozen(low, high)},
				Pointers:    core.Pointers{core.PointerLow: low, core.PointerHigh: high},
				Explanation: fmt.Sprintf("Single-element range; position %d is fixed.", low),
			})
			return nil
		}

		pivot := rec.Values()[high]
		rec.Emit(core.Snap{
			Label: "Choose Pivot",
			Highlights: core.Highlights{
				Pivot:      []int{high},
				Sorted:     fixed,
				Eliminated: frozen(low, high),
			},
			Pointers: core.Pointers{
				core.PointerLow:   low,
				core.PointerHigh:  high,
				core.PointerPivot: high,
			},
			Explanation: fmt.Sprintf("Partitioning %d..%d around pivot %d.", low, high, pivot),
		})

		i := low - 1
		for j := low; j < high; j++ {
			v := rec.Values()
			rec.CountCompare()
			rec.Emit(core.Snap{
				Label: "Compare",
				Highlights: core.Highlights{
					Compare:    []int{j},
					Pivot:      []int{high},
					Sorted:     fixed,
					Eliminated: frozen(low, high),
				},
				Pointers: core.Pointers{
					core.PointerLow:   low,
					core.PointerHigh:  high,
					core.PointerPivot: high,
					core.PointerI:     i,
					core.PointerJ:     j,
				},
				Arrows:      []core.MoveArrow{{From: j, To: high, Kind: core.MoveCompare}},
				Explanation: fmt.Sprintf("Comparing %d with pivot %d.", v[j], pivot),
			})
			if v[j] < pivot {
				i++
				if i != j {
					rec.Swap(i, j)
					v = rec.Values()
					rec.Emit(core.Snap{
						Label: "Swap",
						Highlights: core.Highlights{
							Swap:       []int{i, j},
							Pivot:      []int{high},
							Sorted:     fixed,
							Eliminated: frozen(low, high),
						},
						Pointers: core.Pointers{
							core.PointerLow:   low,
							core.PointerHigh:  high,
							core.PointerPivot: high,
							core.PointerI:     i,
							core.PointerJ:     j,
						},
						Arrows: []core.MoveArrow{
							{From: j, To: i, Kind: core.MoveSwap},
							{From: i, To: j, Kind: core.MoveSwap},
						},
						Explanation: fmt.Sprintf("%d < pivot, swapping into position %d.", v[i], i),
					})
				}
			}
		}

		// phase one: the destination is known, nothing has moved yet
		dest := i + 1
		rec.Emit(core.Snap{
			Label: "Placement Decided",
			Highlights: core.Highlights{
				Pivot:      []int{high},
				Key:        []int{dest},
				Sorted:     fixed,
				Eliminated: frozen(low, high),
			},
			Pointers: core.Pointers{
				core.PointerLow:   low,
				core.PointerHigh:  high,
				core.PointerPivot: high,
				core.PointerKey:   dest,
			},
			Explanation: fmt.Sprintf("Partition complete; pivot %d belongs at position %d.", pivot, dest),
		})

		// phase two: execute the placement
		if dest != high {
			rec.Swap(dest, high)
			rec.Emit(core.Snap{
				Label: "Place Pivot",
				Highlights: core.Highlights{
					Swap:       []int{dest, high},
					Sorted:     fixed,
					Eliminated: frozen(low, high),
				},
				Pointers: core.Pointers{
					core.PointerLow:   low,
					core.PointerHigh:  high,
					core.PointerPivot: dest,
				},
				Arrows: []core.MoveArrow{
					{From: high, To: dest, Kind: core.MoveSwap},
					{From: dest, To: high, Kind: core.MoveSwap},
				},
				Explanation: fmt.Sprintf("Moving pivot %d to position %d.", pivot, dest),
			})
		}

		fixed = core.AddIndex(fixed, dest)
		rec.Emit(core.Snap{
			Label:       "Pivot Fixed",
			Highlights:  core.Highlights{Sorted: fixed, Eliminated: frozen(low, high)},
			Pointers:    core.Pointers{core.PointerLow: low, core.PointerHigh: high, core.PointerPivot: dest},
			Explanation: fmt.Sprintf("Position %d is final; recursing on both sides.", dest),
		})

		if err := sortRange(low, dest-1); err != nil {
			return err
		}
		return sortRange(dest+1, high)
	}

	if err := sortRange(0, n-1); err != nil {
		return nil, err
	}

	emitSorted(rec)
	return rec.Steps(), nil
}
