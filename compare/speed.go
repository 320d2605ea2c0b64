package compare

import (
	"fmt"
	"math"
	"time"
)

// DefaultTieEpsilon is the duration difference below which two lanes are
// declared equally fast. 5ms is a pedagogical constant: configurable,
// not derivable.
const DefaultTieEpsilon = 5 * time.Millisecond

// UnavailableLabel is shown for both lanes when a duration is missing.
const UnavailableLabel = "—"

// SpeedVerdict is the wall-clock outcome of a comparison run.
type SpeedVerdict struct {
	Winner Winner
	LabelA string
	LabelB string
}

// ResolveSpeed converts two playback durations into a winner and a pair of
// relative-speed labels.
//
// Policy, applied in order:
//  1. Either duration missing (≤ 0) → both labels "—", no verdict.
//  2. |tA − tB| ≤ epsilon → Tie, both labels "1x (Tie)".
//  3. Otherwise the faster lane reads "1x"; the slower lane reads
//     tSlow/tFast rounded to 2 decimals — and if rounding lands at or
//     below 1.00, the label is forced to 1.01x, so a slower lane can never
//     display a multiple that contradicts the verdict.
func ResolveSpeed(durA, durB time.Duration, epsilon time.Duration) SpeedVerdict {
	if durA <= 0 || durB <= 0 {
		return SpeedVerdict{Winner: WinnerNone, LabelA: UnavailableLabel, LabelB: UnavailableLabel}
	}

	diff := durA - durB
	if diff < 0 {
		diff = -diff
	}
	if diff <= epsilon {
		return SpeedVerdict{Winner: WinnerTie, LabelA: "1x (Tie)", LabelB: "1x (Tie)"}
	}

	if durA < durB {
		return SpeedVerdict{Winner: WinnerA, LabelA: "1x", LabelB: slowerLabel(durB, durA)}
	}
	return SpeedVerdict{Winner: WinnerB, LabelA: slowerLabel(durA, durB), LabelB: "1x"}
}

// slowerLabel renders the slower lane's relative multiple with the rounding
// floor correction.
func slowerLabel(slow, fast time.Duration) string {
	ratio := slow.Seconds() / fast.Seconds()
	rounded := math.Round(ratio*100) / 100
	if rounded <= 1.00 {
		rounded = 1.01
	}
	return fmt.Sprintf("%.2fx", rounded)
}
