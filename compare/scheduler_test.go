package compare_test

import (
	"testing"
	"time"

	"github.com/algolens/algolens/compare"
	"github.com/algolens/algolens/core"
	"github.com/algolens/algolens/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScheduler drives a scheduler with a synthetic clock: one tick per
// interval, starting at epoch. Returns the number of ticks consumed.
func runScheduler(t *testing.T, s *compare.Scheduler, interval time.Duration) int {
	t.Helper()
	now := time.Unix(0, 0)
	s.Start(now)
	ticks := 0
	for {
		ticks++
		require.Less(t, ticks, 100000, "scheduler failed to terminate")
		now = now.Add(interval)
		if !s.Tick(interval, now) {
			return ticks
		}
	}
}

// laneOf builds a lane over a real trace.
func laneOf(t *testing.T, algo core.Algorithm, input []int) *compare.Lane {
	t.Helper()
	trace, err := sorting.Instrument(algo, input)
	require.NoError(t, err)
	return compare.NewLane(trace)
}

// TestScheduler_ConcreteScenario pins the documented comparison run:
// bubble vs selection on the same array under one shared 1200ms clock,
// both lanes started on the same tick. The lane with fewer events ends
// strictly first, and the resolver only ties within 5ms.
func TestScheduler_ConcreteScenario(t *testing.T) {
	input := []int{23, 1, 10, 5, 2, 7, 15}
	a := laneOf(t, core.BubbleSort, input)
	b := laneOf(t, core.SelectionSort, input)
	require.NotEqual(t, len(a.Timeline), len(b.Timeline),
		"fixture must give the lanes different event counts")

	s := compare.NewScheduler(a, b, 1200*time.Millisecond)
	runScheduler(t, s, 1200*time.Millisecond)

	require.True(t, a.Done())
	require.True(t, b.Done())
	assert.Equal(t, a.PlaybackStart, b.PlaybackStart, "both lanes start on the same tick")

	fast, slow := a, b
	if len(b.Timeline) < len(a.Timeline) {
		fast, slow = b, a
	}
	assert.True(t, fast.PlaybackEnd.Before(slow.PlaybackEnd),
		"the lane with fewer events must end strictly first")

	v := compare.ResolveSpeed(a.Duration(), b.Duration(), compare.DefaultTieEpsilon)
	assert.NotEqual(t, compare.WinnerTie, v.Winner,
		"durations differ by full ticks, never within the 5ms epsilon")
}

// TestScheduler_SharedClockNoDrift verifies both lanes advance on the very
// same firings: after every tick the cursors differ by at most the
// difference already banked by a finished lane.
func TestScheduler_SharedClockNoDrift(t *testing.T) {
	a := laneOf(t, core.BubbleSort, []int{3, 2, 1})
	b := laneOf(t, core.SelectionSort, []int{3, 2, 1})

	s := compare.NewScheduler(a, b, compare.MinInterval)
	now := time.Unix(0, 0)
	s.Start(now)
	for s.Running() {
		now = now.Add(compare.MinInterval)
		s.Tick(compare.MinInterval, now)
		if !a.Done() && !b.Done() {
			assert.Equal(t, a.Cursor(), b.Cursor(), "live lanes must move in lockstep")
		}
	}
}

// TestScheduler_PlaybackEndStampedOnce verifies later firings never
// overwrite a finished lane's end stamp.
func TestScheduler_PlaybackEndStampedOnce(t *testing.T) {
	a := laneOf(t, core.BubbleSort, []int{2, 1})           // short trace
	b := laneOf(t, core.BubbleSort, []int{5, 4, 3, 2, 1})  // long trace

	s := compare.NewScheduler(a, b, compare.MinInterval)
	now := time.Unix(0, 0)
	s.Start(now)

	var firstEnd time.Time
	for s.Running() {
		now = now.Add(compare.MinInterval)
		s.Tick(compare.MinInterval, now)
		if a.Done() && firstEnd.IsZero() {
			firstEnd = a.PlaybackEnd
		}
	}
	assert.Equal(t, firstEnd, a.PlaybackEnd, "end stamp must never be overwritten")
	assert.True(t, a.PlaybackEnd.Before(b.PlaybackEnd))
}

// TestScheduler_AccumulatorThreshold verifies ticks below the interval
// bank progress without advancing, and the floor clamps tiny intervals.
func TestScheduler_AccumulatorThreshold(t *testing.T) {
	a := compare.NewLane(core.Trace{{Label: "a0"}, {Label: "a1"}})
	b := compare.NewLane(core.Trace{{Label: "b0"}, {Label: "b1"}})

	s := compare.NewScheduler(a, b, time.Millisecond)
	assert.Equal(t, compare.MinInterval, s.Interval(), "interval floors at MinInterval")

	now := time.Unix(0, 0)
	s.Start(now)
	s.Tick(compare.MinInterval/2, now)
	assert.Equal(t, 0, a.Cursor(), "half an interval banks, does not advance")
	s.Tick(compare.MinInterval/2, now)
	assert.Equal(t, 1, a.Cursor(), "accumulated halves reach the threshold")
	assert.Equal(t, 1, b.Cursor())
}

// TestScheduler_PauseDiscardsAccumulator verifies pause drops pending tick
// progress but never rolls back an advanced cursor.
func TestScheduler_PauseDiscardsAccumulator(t *testing.T) {
	mid := core.Step{Label: "compare", HighlightsAfter: core.Highlights{Compare: []int{0}}}
	a := compare.NewLane(core.Trace{{Label: "a0"}, mid, {Label: "a2"}})
	b := compare.NewLane(core.Trace{{Label: "b0"}, mid, {Label: "b2"}})

	s := compare.NewScheduler(a, b, compare.MinInterval)
	now := time.Unix(0, 0)
	s.Start(now)

	s.Tick(compare.MinInterval, now) // advance to cursor 1
	require.Equal(t, 1, a.Cursor())

	s.Tick(compare.MinInterval/2, now) // banked progress…
	s.Pause()                          // …discarded here
	assert.False(t, s.Running())
	assert.Equal(t, 1, a.Cursor(), "pause never rolls back a cursor")

	s.Resume()
	s.Tick(compare.MinInterval/2, now)
	assert.Equal(t, 1, a.Cursor(), "post-pause half interval is not enough — the bank was cleared")
	s.Tick(compare.MinInterval/2, now)
	assert.Equal(t, 2, a.Cursor())
}

// TestScheduler_TerminatesOnlyWhenBothStopped verifies the clock stays open
// while either lane is live.
func TestScheduler_TerminatesOnlyWhenBothStopped(t *testing.T) {
	a := compare.NewLane(core.Trace{{Label: "a0"}, {Label: "a1"}})
	b := compare.NewLane(core.Trace{{Label: "b0"}, {Label: "b1"}, {Label: "b2"}, {Label: "b3"}})

	s := compare.NewScheduler(a, b, compare.MinInterval)
	now := time.Unix(0, 0)
	s.Start(now)
	for s.Running() {
		now = now.Add(compare.MinInterval)
		s.Tick(compare.MinInterval, now)
		if !s.Done() {
			assert.True(t, s.Running(), "clock must stay open while a lane is live")
		}
	}
	assert.True(t, a.Done())
	assert.True(t, b.Done())
	assert.False(t, s.Tick(compare.MinInterval, now), "a cleared clock stays cleared")
}
