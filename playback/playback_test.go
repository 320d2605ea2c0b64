package playback_test

import (
	"testing"

	"github.com/algolens/algolens/core"
	"github.com/algolens/algolens/playback"
	"github.com/algolens/algolens/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traceOf builds a small real trace to drive the machine.
func traceOf(t *testing.T, input []int) core.Trace {
	t.Helper()
	trace, err := sorting.Bubble(input)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(trace), 3)
	return trace
}

// TestPlayer_Lifecycle walks idle → ready → playing → finished → reset.
func TestPlayer_Lifecycle(t *testing.T) {
	p := playback.NewPlayer()
	assert.Equal(t, playback.StateIdle, p.State())
	assert.Equal(t, core.Step{}, p.Current())

	trace := traceOf(t, []int{3, 1, 2})
	p.Load(trace)
	assert.Equal(t, playback.StateReady, p.State())
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, trace[0], p.Current())

	p.Play()
	assert.Equal(t, playback.StatePlaying, p.State())
	for p.Advance() {
	}
	assert.Equal(t, playback.StateFinished, p.State())
	assert.Equal(t, len(trace)-1, p.Cursor())

	p.Reset()
	assert.Equal(t, playback.StateReady, p.State())
	assert.Equal(t, 0, p.Cursor())
	assert.Same(t, &trace[0], &p.Trace()[0], "reset must not regenerate the trace")
}

// TestPlayer_PlayAtEndIsNoop pins the contract that Play does nothing once
// the cursor sits on the final index.
func TestPlayer_PlayAtEndIsNoop(t *testing.T) {
	p := playback.NewPlayer()
	p.Load(traceOf(t, []int{2, 1}))
	p.Seek(len(p.Trace()) - 1)
	require.True(t, p.AtEnd())
	require.Equal(t, playback.StateFinished, p.State())

	p.Play()
	assert.Equal(t, playback.StateFinished, p.State(), "Play at the final index is a no-op")
}

// TestPlayer_NextPrevClamp verifies stepping never wraps or panics.
func TestPlayer_NextPrevClamp(t *testing.T) {
	p := playback.NewPlayer()
	p.Load(traceOf(t, []int{2, 1}))
	last := len(p.Trace()) - 1

	p.Prev()
	assert.Equal(t, 0, p.Cursor(), "Prev at 0 clamps")

	for i := 0; i < last+5; i++ {
		p.Next()
	}
	assert.Equal(t, last, p.Cursor(), "Next clamps at the final index")
	assert.Equal(t, playback.StateFinished, p.State())

	p.Prev()
	assert.Equal(t, last-1, p.Cursor())
	assert.Equal(t, playback.StatePaused, p.State(), "stepping back leaves Finished")
}

// TestPlayer_SeekRejectsOutOfRange verifies invalid seeks are ignored.
func TestPlayer_SeekRejectsOutOfRange(t *testing.T) {
	p := playback.NewPlayer()
	p.Load(traceOf(t, []int{3, 2, 1}))
	p.Seek(2)
	require.Equal(t, 2, p.Cursor())

	p.Seek(-1)
	assert.Equal(t, 2, p.Cursor())
	p.Seek(len(p.Trace()))
	assert.Equal(t, 2, p.Cursor())
}

// TestPlayer_PauseResume verifies playing ⇄ paused keeps the cursor.
func TestPlayer_PauseResume(t *testing.T) {
	p := playback.NewPlayer()
	p.Load(traceOf(t, []int{3, 1, 2}))
	p.Play()
	p.Advance()
	at := p.Cursor()

	p.Pause()
	assert.Equal(t, playback.StatePaused, p.State())
	assert.Equal(t, at, p.Cursor(), "pause never rolls back an advanced cursor")
	assert.False(t, p.Advance(), "no advance while paused")
	assert.Equal(t, at, p.Cursor())

	p.Play()
	assert.Equal(t, playback.StatePlaying, p.State())
}

// TestPlayer_LoadEmptyClears verifies the recoverable no-op path: rejected
// input clears any previous trace.
func TestPlayer_LoadEmptyClears(t *testing.T) {
	p := playback.NewPlayer()
	p.Load(traceOf(t, []int{2, 1}))
	require.Equal(t, playback.StateReady, p.State())

	p.Load(nil)
	assert.Equal(t, playback.StateIdle, p.State())
	assert.Nil(t, p.Trace())

	// idle machine ignores every control
	p.Play()
	p.Next()
	p.Seek(0)
	p.Reset()
	assert.Equal(t, playback.StateIdle, p.State())
}
