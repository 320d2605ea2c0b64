package searching

import (
	"fmt"
	"math"

	"github.com/algolens/algolens/core"
)

// Jump — Jump Search
//
// Description:
//
//	Leaps through the sorted working copy in blocks of ⌊√n⌋, probing the
//	last index of each block. Once a block that could contain the target
//	is found (probe value ≥ target), a linear scan walks that block.
//	Everything left behind a completed leap is eliminated.
//
// Complexity: O(√n) comparisons.
func Jump(arr []int, target int, opts ...Option) (core.Trace, error) {
	o := buildOptions(opts)
	if len(arr) == 0 {
		return nil, core.ErrEmptyInput
	}

	rec := core.NewRecorder(arr)
	start(rec, core.JumpSearch, target, true)

	v := rec.Values()
	n := rec.Len()
	block := int(math.Floor(math.Sqrt(float64(n))))
	if block < 1 {
		block = 1
	}

	prev, next := 0, block
	for {
		if err := canceled(o.Ctx); err != nil {
			return nil, err
		}

		probe := next - 1
		if probe > n-1 {
			probe = n - 1
		}
		rec.CountCompare()
		rec.Emit(core.Snap{
			Label: "Jump",
			Highlights: core.Highlights{
				Compare:    []int{probe},
				Eliminated: core.Range(0, prev-1),
			},
			Pointers:    core.Pointers{core.PointerLow: prev, core.PointerI: probe},
			Explanation: fmt.Sprintf("Probing block end %d: %d vs %d.", probe, v[probe], target),
		})
		if v[probe] >= target {
			break
		}
		prev = next
		if prev > n-1 {
			emitNotFound(rec, target)
			return rec.Steps(), nil
		}
		next += block
	}

	end := next - 1
	if end > n-1 {
		end = n - 1
	}
	for i := prev; i <= end; i++ {
		if err := canceled(o.Ctx); err != nil {
			return nil, err
		}

		rec.CountCompare()
		rec.Emit(core.Snap{
			Label: "Scan",
			Highlights: core.Highlights{
				Compare:    []int{i},
				Eliminated: core.Range(0, i-1),
			},
			Pointers:    core.Pointers{core.PointerLow: prev, core.PointerHigh: end, core.PointerI: i},
			Explanation: fmt.Sprintf("Scanning position %d: %d vs %d.", i, v[i], target),
		})
		if v[i] == target {
			emitFound(rec, i, target)
			return rec.Steps(), nil
		}
		if v[i] > target {
			break
		}
	}

	emitNotFound(rec, target)
	return rec.Steps(), nil
}
