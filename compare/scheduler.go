package compare

import (
	"time"

	"github.com/algolens/algolens/core"
)

// MinInterval is the floor of the shared tick interval: the accumulator
// threshold is max(interval, MinInterval), so a pathological configuration
// can never spin the lanes faster than this.
const MinInterval = 50 * time.Millisecond

// Lane is one side of a comparison run: its own trace, filtered timeline,
// cursor and wall-clock bounds. Lanes share nothing but the scheduler's
// clock signal.
type Lane struct {
	Trace    core.Trace
	Timeline []int

	cursor int
	ended  bool

	// PlaybackStart is stamped by Scheduler.Start; PlaybackEnd is stamped
	// exactly once, on the firing that finds the lane at its last event.
	PlaybackStart time.Time
	PlaybackEnd   time.Time
}

// NewLane builds a lane over trace with its filtered timeline.
func NewLane(trace core.Trace) *Lane {
	return &Lane{Trace: trace, Timeline: Timeline(trace)}
}

// Cursor returns the lane's position within its timeline.
func (l *Lane) Cursor() int { return l.cursor }

// StepIndex returns the trace index under the cursor, for rendering.
func (l *Lane) StepIndex() int {
	if len(l.Timeline) == 0 {
		return 0
	}
	return l.Timeline[l.cursor]
}

// Step returns the trace step under the cursor; the zero Step for an empty
// lane.
func (l *Lane) Step() core.Step {
	if len(l.Timeline) == 0 {
		return core.Step{}
	}
	return l.Trace[l.StepIndex()]
}

// Done reports whether the lane has stopped advancing and stamped its end.
func (l *Lane) Done() bool { return l.ended }

// Duration returns PlaybackEnd−PlaybackStart, or 0 while either stamp is
// missing.
func (l *Lane) Duration() time.Duration {
	if l.PlaybackStart.IsZero() || l.PlaybackEnd.IsZero() {
		return 0
	}
	return l.PlaybackEnd.Sub(l.PlaybackStart)
}

// advance moves the lane by exactly one event, or — when already at the
// last event — stamps PlaybackEnd once and stops the lane instead.
func (l *Lane) advance(now time.Time) {
	if l.ended {
		return
	}
	if l.cursor >= len(l.Timeline)-1 {
		l.ended = true
		l.PlaybackEnd = now
		return
	}
	l.cursor++
}

// Scheduler advances two lanes under one shared clock. A single repeating
// tick source feeds Tick; each firing advances both lane cursors
// independently by one event. Two independently scheduled timers would
// drift apart under tab-throttling or GC pauses — both lanes must observe
// the same elapsed-time signal, so there is exactly one accumulator.
type Scheduler struct {
	laneA, laneB *Lane
	interval     time.Duration
	acc          time.Duration
	running      bool
}

// NewScheduler builds a scheduler over two lanes with the shared interval,
// floored at MinInterval.
func NewScheduler(a, b *Lane, interval time.Duration) *Scheduler {
	if interval < MinInterval {
		interval = MinInterval
	}
	return &Scheduler{laneA: a, laneB: b, interval: interval}
}

// Interval returns the effective (floored) shared interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Start stamps both lanes' PlaybackStart with the same instant — both
// lanes begin on the same tick by construction — and opens the clock.
func (s *Scheduler) Start(now time.Time) {
	s.laneA.PlaybackStart = now
	s.laneB.PlaybackStart = now
	s.acc = 0
	s.running = true
}

// Tick feeds one clock signal: elapsed is the time since the previous tick,
// now the current instant. When the accumulator reaches the shared
// interval, both lanes attempt one advance. Returns false once both lanes
// have stopped — the caller clears its tick source then.
func (s *Scheduler) Tick(elapsed time.Duration, now time.Time) bool {
	if !s.running {
		return false
	}
	s.acc += elapsed
	if s.acc >= s.interval {
		s.acc -= s.interval
		s.laneA.advance(now)
		s.laneB.advance(now)
	}
	if s.laneA.Done() && s.laneB.Done() {
		s.running = false
	}
	return s.running
}

// Pause stops the clock and discards the pending accumulator progress.
// Cursors that already advanced stay where they are.
func (s *Scheduler) Pause() {
	s.acc = 0
	s.running = false
}

// Resume reopens the clock after a pause.
func (s *Scheduler) Resume() {
	if !s.laneA.Done() || !s.laneB.Done() {
		s.running = true
	}
}

// Running reports whether the clock is open.
func (s *Scheduler) Running() bool { return s.running }

// Done reports whether both lanes have stopped.
func (s *Scheduler) Done() bool { return s.laneA.Done() && s.laneB.Done() }
