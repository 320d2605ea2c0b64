package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/algolens/algolens/dataset"
	"github.com/algolens/algolens/playback"
)

// tickMsg carries the wall-clock time of one playback timer firing.
type tickMsg time.Time

// tick schedules the next timer firing after d.
func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.Input.Blur()
				m.applyInput()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.Input.Blur()
				m.Input.SetValue("")
				return m, nil
			}
			m.Input, cmd = m.Input.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleTick drives whichever clock is live: the single player or the
// shared comparison scheduler. Returning no command stops the timer
// chain; play/resume restarts it.
func (m AppModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.Mode == modeCompare {
		if m.Scheduler == nil || !m.Scheduler.Running() {
			return m, nil
		}
		elapsed := now.Sub(m.lastTick)
		m.lastTick = now
		if m.Scheduler.Tick(elapsed, now) {
			return m, tick(m.Scheduler.Interval())
		}
		return m, nil
	}

	if m.Player.Advance() {
		return m, tick(m.Cfg.Playback.Interval.Std())
	}

	return m, nil
}

// handleKey maps key presses onto playback commands.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.ShowHelp = !m.ShowHelp

	case "i":
		m.InputMode = true
		m.Input.Focus()
		return m, nil

	case "c":
		if m.AlgoA != "" && m.AlgoB != "" {
			if m.Mode == modeCompare {
				m.Mode = modeSingle
			} else {
				m.Mode = modeCompare
			}
		}

	case " ":
		return m.togglePlay()

	case "right", "l":
		if m.Mode == modeSingle {
			m.Player.Next()
		}

	case "left", "h":
		if m.Mode == modeSingle {
			m.Player.Prev()
		}

	case "home", "g":
		if m.Mode == modeSingle {
			m.Player.Seek(0)
		}

	case "end", "G":
		if m.Mode == modeSingle {
			m.Player.Seek(len(m.Player.Trace()) - 1)
		}

	case "r":
		if m.Mode == modeCompare {
			m.rebuildComparison()
		} else {
			m.Player.Reset()
		}

	case "a":
		if m.Mode == modeSingle {
			m.Algorithm = cycleAlgorithm(m.Algorithm)
			m.rebuild()
		}
	}

	return m, nil
}

// togglePlay flips between running and paused for the active view and
// starts the timer chain when entering the running state.
func (m AppModel) togglePlay() (tea.Model, tea.Cmd) {
	if m.Mode == modeCompare {
		if m.Scheduler == nil || m.Scheduler.Done() {
			return m, nil
		}
		now := time.Now()
		switch {
		case m.Scheduler.Running():
			m.Scheduler.Pause()
			return m, nil
		case m.LaneA.PlaybackStart.IsZero():
			m.Scheduler.Start(now)
		default:
			m.Scheduler.Resume()
		}
		m.lastTick = now
		return m, tick(m.Scheduler.Interval())
	}

	switch m.Player.State() {
	case playback.StatePlaying:
		m.Player.Pause()
		return m, nil
	case playback.StateReady, playback.StatePaused:
		m.Player.Play()
		return m, tick(m.Cfg.Playback.Interval.Std())
	}

	return m, nil
}

// applyInput parses the text buffer as a new array. A parse failure
// leaves the current array and trace untouched.
func (m *AppModel) applyInput() {
	values, err := dataset.ParseList(m.Input.Value())
	if err != nil {
		return
	}
	m.Values = values
	m.Target = dataset.ParseTarget("", values)
	m.Input.SetValue("")
	m.rebuild()
}
