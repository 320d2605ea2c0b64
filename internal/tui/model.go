// Package tui is the bubbletea front-end: one model, two views
// (single playback and side-by-side comparison), all state derived
// from read-only traces.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/algolens/algolens/compare"
	"github.com/algolens/algolens/core"
	"github.com/algolens/algolens/internal/config"
	"github.com/algolens/algolens/playback"
)

// viewMode selects which of the two screens is active.
type viewMode int

const (
	modeSingle viewMode = iota
	modeCompare
)

// AppModel holds the TUI state. Traces are immutable once built; the
// model only moves cursors over them.
type AppModel struct {
	Cfg config.Config

	// Data
	Values    []int
	Algorithm core.Algorithm
	Target    int
	Trace     core.Trace
	Err       error

	// Single playback
	Player *playback.Player

	// Comparison
	Mode      viewMode
	AlgoA     core.Algorithm
	AlgoB     core.Algorithm
	Scheduler *compare.Scheduler
	LaneA     *compare.Lane
	LaneB     *compare.Lane
	lastTick  time.Time

	// UI state
	WindowSize tea.WindowSizeMsg
	InputMode  bool
	Input      textinput.Model
	ShowHelp   bool
}

// Params carries the CLI-resolved startup state into the model.
type Params struct {
	Cfg       config.Config
	Values    []int
	Algorithm core.Algorithm
	Target    int
	CompareA  core.Algorithm
	CompareB  core.Algorithm
}

// NewModel builds the initial model and its first trace. When both
// comparison algorithms are set the model starts on the comparison
// screen.
func NewModel(p Params) AppModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 23, 1, 10, 5, 2"
	ti.CharLimit = 120
	ti.Width = 40

	m := AppModel{
		Cfg:       p.Cfg,
		Values:    p.Values,
		Algorithm: p.Algorithm,
		Target:    p.Target,
		AlgoA:     p.CompareA,
		AlgoB:     p.CompareB,
		Player:    playback.NewPlayer(),
		Input:     ti,
	}
	if p.CompareA != "" && p.CompareB != "" {
		m.Mode = modeCompare
	}
	m.rebuild()

	return m
}

// Init schedules nothing: timers start on the first play command.
func (m AppModel) Init() tea.Cmd { return nil }

// rebuild regenerates the trace(s) for the current values and
// algorithm selection, and resets all cursors.
func (m *AppModel) rebuild() {
	m.Err = nil

	trace, err := BuildTrace(m.Algorithm, m.Values, m.Target)
	if err != nil {
		m.Err = err
		m.Player.Load(nil)
		return
	}
	m.Trace = trace
	m.Player.Load(trace)

	if m.AlgoA != "" && m.AlgoB != "" {
		m.rebuildComparison()
	}
}

// rebuildComparison regenerates both lanes and a fresh scheduler.
func (m *AppModel) rebuildComparison() {
	traceA, err := BuildTrace(m.AlgoA, m.Values, m.Target)
	if err != nil {
		m.Err = err
		return
	}
	traceB, err := BuildTrace(m.AlgoB, m.Values, m.Target)
	if err != nil {
		m.Err = err
		return
	}

	m.LaneA = compare.NewLane(traceA)
	m.LaneB = compare.NewLane(traceB)
	m.Scheduler = compare.NewScheduler(m.LaneA, m.LaneB, m.Cfg.Playback.CompareInterval.Std())
}
