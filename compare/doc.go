// Package compare runs two traces head to head: it filters each trace down
// to comparable events, scores the filtered work, advances both lanes under
// one shared clock, and turns the resulting durations into a speed verdict.
//
// 🚀 Why filter at all?
//
//	Instrumenters differ in how much narration they emit. Without a filter,
//	a chatty algorithm would be unfairly slowed (or sped up) relative to a
//	terse one. The Timeline keeps index 0, the final index, and every step
//	that is a real compare/swap event or carries an algorithm-meaningful
//	milestone marker (pivot, key, found, sorted, eliminated) — and nothing
//	else.
//
// ✨ The pieces:
//
//   - Classify       – swap/compare/other per step, move arrows first;
//     highlight sets alone are never trusted as swap evidence
//   - Timeline       – ordered, deduplicated comparable trace indices
//   - Work           – comparisons·1 + swaps·3 over the filtered events;
//     the 3:1 asymmetry is a fixed pedagogical policy, adjustable through
//     Weights but never exposed as a UI tunable
//   - Scheduler      – ONE shared clock advancing two independent lane
//     cursors. Two free-running timers drift apart under throttling and GC
//     pauses; a single tick source with per-lane accumulator state cannot
//   - ResolveSpeed   – durations → winner + relative-speed labels with a
//     deterministic rounding policy and a 5ms tie epsilon
//
// ⚙️ Usage:
//
//	laneA := compare.NewLane(traceA)
//	laneB := compare.NewLane(traceB)
//	s := compare.NewScheduler(laneA, laneB, 1200*time.Millisecond)
//	s.Start(time.Now())
//	for s.Tick(delta, time.Now()) { // delta from the caller's tick source
//	}
//	v := compare.ResolveSpeed(laneA.Duration(), laneB.Duration(), compare.DefaultTieEpsilon)
//
// The scheduler is deliberately clock-agnostic: feed it elapsed durations
// from a time.Ticker, a TUI tick message, or a test's synthetic clock.
package compare
