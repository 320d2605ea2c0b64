package playback

import "github.com/algolens/algolens/core"

// State enumerates the playback machine's states.
type State int

const (
	// StateIdle — no trace loaded.
	StateIdle State = iota
	// StateReady — trace loaded, cursor at 0, not yet playing.
	StateReady
	// StatePlaying — the cursor advances on every Advance call.
	StatePlaying
	// StatePaused — playback suspended; the cursor holds its position.
	StatePaused
	// StateFinished — the cursor reached the final index while playing.
	// Behaves like Paused.
	StateFinished
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "idle"
	}
}

// Player is the single-trace playback state machine. The zero value is
// usable and Idle; NewPlayer exists for symmetry with the rest of the
// engine. Player is not safe for concurrent use — the engine is
// single-threaded by design, one owner per view.
type Player struct {
	trace  core.Trace
	cursor int
	state  State
}

// NewPlayer returns an Idle player with no trace.
func NewPlayer() *Player { return &Player{} }

// Load replaces the current trace, moving to Ready at cursor 0. Loading an
// empty trace clears the player back to Idle — the caller's recoverable
// no-op path for rejected input.
func (p *Player) Load(trace core.Trace) {
	p.trace = trace
	p.cursor = 0
	if len(trace) == 0 {
		p.trace = nil
		p.state = StateIdle
		return
	}
	p.state = StateReady
}

// State returns the current machine state.
func (p *Player) State() State { return p.state }

// Cursor returns the current step index; 0 when Idle.
func (p *Player) Cursor() int { return p.cursor }

// Trace returns the loaded trace for read-only consumption.
func (p *Player) Trace() core.Trace { return p.trace }

// Current returns the step under the cursor; the zero Step when Idle.
func (p *Player) Current() core.Step {
	if p.state == StateIdle {
		return core.Step{}
	}
	return p.trace[p.cursor]
}

// AtEnd reports whether the cursor sits on the final index.
func (p *Player) AtEnd() bool {
	return p.state != StateIdle && p.cursor == len(p.trace)-1
}

// Play starts playback. No-op when Idle, already Playing, or already at the
// final index.
func (p *Player) Play() {
	if p.state == StateIdle || p.state == StatePlaying || p.AtEnd() {
		return
	}
	p.state = StatePlaying
}

// Pause suspends playback. No-op unless Playing.
func (p *Player) Pause() {
	if p.state == StatePlaying {
		p.state = StatePaused
	}
}

// Advance moves the cursor one step forward on behalf of the caller's tick
// source. Reaching the final index auto-transitions to Finished. Returns
// true while the player keeps playing.
func (p *Player) Advance() bool {
	if p.state != StatePlaying {
		return false
	}
	p.cursor++
	if p.cursor >= len(p.trace)-1 {
		p.cursor = len(p.trace) - 1
		p.state = StateFinished
		return false
	}
	return true
}

// Next steps the cursor forward, clamped to the final index. Stepping onto
// the final index lands in Finished; no wrap, no error.
func (p *Player) Next() {
	if p.state == StateIdle {
		return
	}
	p.moveTo(p.cursor + 1)
}

// Prev steps the cursor backward, clamped to 0.
func (p *Player) Prev() {
	if p.state == StateIdle {
		return
	}
	p.moveTo(p.cursor - 1)
}

// Seek jumps to index i. Out-of-range requests are rejected as a no-op.
func (p *Player) Seek(i int) {
	if p.state == StateIdle || i < 0 || i >= len(p.trace) {
		return
	}
	p.moveTo(i)
}

// Reset returns to Ready at cursor 0 without regenerating the trace.
func (p *Player) Reset() {
	if p.state == StateIdle {
		return
	}
	p.cursor = 0
	p.state = StateReady
}

// moveTo clamps and applies a manual cursor move, keeping the state
// consistent with the landing position.
func (p *Player) moveTo(i int) {
	last := len(p.trace) - 1
	if i < 0 {
		i = 0
	}
	if i > last {
		i = last
	}
	p.cursor = i
	switch {
	case i == last:
		p.state = StateFinished
	case p.state == StateFinished:
		p.state = StatePaused
	}
}
