package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolens/algolens/core"
	"github.com/algolens/algolens/internal/config"
	"github.com/algolens/algolens/internal/tui"
	"github.com/algolens/algolens/playback"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newModel(t *testing.T) tui.AppModel {
	t.Helper()

	return tui.NewModel(tui.Params{
		Cfg:       config.DefaultConfig(),
		Values:    []int{3, 1, 2},
		Algorithm: core.BubbleSort,
	})
}

func TestBuildTrace_DispatchesByFamily(t *testing.T) {
	trace, err := tui.BuildTrace(core.BubbleSort, []int{3, 1, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, core.LabelInitialArray, trace.First().Label)

	trace, err = tui.BuildTrace(core.BinarySearch, []int{1, 2, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, core.LabelStartSearch, trace.First().Label)
}

func TestNewModel_LoadsTrace(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.Err)
	assert.Equal(t, playback.StateReady, m.Player.State())
	assert.NotEmpty(t, m.Trace)
}

func TestUpdate_ManualStepping(t *testing.T) {
	m := newModel(t)

	next, _ := m.Update(keyRune('l'))
	m = next.(tui.AppModel)
	assert.Equal(t, 1, m.Player.Cursor())

	next, _ = m.Update(keyRune('h'))
	m = next.(tui.AppModel)
	assert.Equal(t, 0, m.Player.Cursor())
}

func TestUpdate_SpaceStartsPlayback(t *testing.T) {
	m := newModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(tui.AppModel)
	assert.Equal(t, playback.StatePlaying, m.Player.State())
	assert.NotNil(t, cmd, "playing must schedule a tick")
}

func TestUpdate_CycleAlgorithmRebuilds(t *testing.T) {
	m := newModel(t)
	before := m.Algorithm

	next, _ := m.Update(keyRune('a'))
	m = next.(tui.AppModel)
	assert.NotEqual(t, before, m.Algorithm)
	require.NoError(t, m.Err)
	assert.Equal(t, 0, m.Player.Cursor(), "rebuild resets the cursor")
}

func TestUpdate_InputModeAppliesArray(t *testing.T) {
	m := newModel(t)

	next, _ := m.Update(keyRune('i'))
	m = next.(tui.AppModel)
	require.True(t, m.InputMode)

	for _, r := range "9, 8, 7" {
		next, _ = m.Update(keyRune(r))
		m = next.(tui.AppModel)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(tui.AppModel)

	assert.False(t, m.InputMode)
	assert.Equal(t, []int{9, 8, 7}, m.Values)
	assert.Equal(t, []int{9, 8, 7}, m.Trace.First().Before)
}

func TestUpdate_InputModeRejectsGarbageKeepingOldArray(t *testing.T) {
	m := newModel(t)

	next, _ := m.Update(keyRune('i'))
	m = next.(tui.AppModel)
	for _, r := range "junk" {
		next, _ = m.Update(keyRune(r))
		m = next.(tui.AppModel)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(tui.AppModel)

	assert.Equal(t, []int{3, 1, 2}, m.Values, "parse failure keeps the previous array")
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestNewModel_ComparisonMode(t *testing.T) {
	m := tui.NewModel(tui.Params{
		Cfg:       config.DefaultConfig(),
		Values:    []int{5, 4, 3, 2, 1},
		Algorithm: core.BubbleSort,
		CompareA:  core.BubbleSort,
		CompareB:  core.SelectionSort,
	})
	require.NoError(t, m.Err)
	require.NotNil(t, m.Scheduler)
	assert.False(t, m.Scheduler.Running())
	assert.NotEmpty(t, m.LaneA.Timeline)
	assert.NotEmpty(t, m.LaneB.Timeline)
}
