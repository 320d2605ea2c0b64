// Package playback is the single-trace cursor state machine: it owns which
// step of a trace is on screen and how the cursor may move, and nothing
// else. The tick source lives with the caller — the machine itself has no
// timers, which keeps it synchronous, deterministic and trivially testable.
//
// 🚀 States and transitions:
//
//	Idle ──Load──▶ Ready ──Play──▶ Playing ⇄ Paused
//	                 ▲                │
//	                 └────Reset───────┤ (auto on reaching the final index)
//	                                  ▼
//	                              Finished
//
// ✨ Contract:
//
//   - Next/Prev clamp the cursor to [0, len−1]; they never wrap or panic
//   - Play is a no-op when the cursor is already at the final index
//   - Reaching the final index while playing auto-transitions to Finished,
//     which behaves like Paused
//   - Reset returns to Ready at cursor 0 without regenerating the trace
//   - Seek rejects out-of-range indices as a no-op
//   - Load replaces the trace and cursor; an empty trace clears to Idle
//
// ⚙️ Usage:
//
//	p := playback.NewPlayer()
//	p.Load(trace)
//	p.Play()
//	for p.Advance() { // one call per timer tick, owned by the caller
//	  render(p.Current())
//	}
package playback
