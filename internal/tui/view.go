package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/algolens/algolens/compare"
	"github.com/algolens/algolens/core"
	"github.com/algolens/algolens/playback"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	explainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	verdictStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	// cellStyles maps each highlight category onto its color. The order
	// of precedence between categories is decided by core.Resolve; the
	// view only paints the winner.
	cellStyles = map[core.HighlightState]lipgloss.Style{
		core.StateNone:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		core.StateCompare:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		core.StateSwap:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		core.StateKey:        lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
		core.StateSorted:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		core.StateFound:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true).Underline(true),
		core.StateShift:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		core.StatePivot:      lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
		core.StateEliminated: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
)

func (m AppModel) View() string {
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  %s\n", m.Err, dimStyle.Render("press i to enter a new array, q to quit"))
	}

	var b strings.Builder
	if m.Mode == modeCompare {
		b.WriteString(m.compareView())
	} else {
		b.WriteString(m.singleView())
	}

	if m.InputMode {
		b.WriteString("\n  New array: " + m.Input.View() + "\n")
	}
	if m.ShowHelp {
		b.WriteString(m.helpView())
	} else {
		b.WriteString(dimStyle.Render("\n  space play/pause · ←/→ step · g/G ends · r reset · a algorithm · i array · c compare · ? help · q quit\n"))
	}

	return b.String()
}

// singleView renders the playback screen: one array, its pointers,
// the step narration and the metrics panel.
func (m AppModel) singleView() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("AlgoLens — "+m.Algorithm.Title()) + "\n\n")

	if m.Player.State() == playback.StateIdle {
		b.WriteString("  " + dimStyle.Render("no trace loaded; press i to enter an array") + "\n")
		return b.String()
	}

	step := m.Player.Current()
	b.WriteString("  " + labelStyle.Render(step.Label) + "\n")
	if step.Explanation != "" {
		b.WriteString("  " + explainStyle.Render(step.Explanation) + "\n")
	}
	b.WriteString("\n  " + renderArray(step.After, step.HighlightsAfter) + "\n")
	if line := renderPointers(step.Pointers, len(step.After)); line != "" {
		b.WriteString("  " + dimStyle.Render(line) + "\n")
	}

	b.WriteString("\n" + panelStyle.Render(m.metricsPanel(step)) + "\n")

	return b.String()
}

// metricsPanel summarizes the cursor position and counters of a step.
func (m AppModel) metricsPanel(step core.Step) string {
	cursor := m.Player.Cursor()
	total := len(m.Player.Trace())

	return fmt.Sprintf("step %d/%d · %s · comparisons %d · swaps %d · passes %d",
		cursor+1, total, m.Player.State(),
		step.Metrics.Comparisons, step.Metrics.Swaps, step.Metrics.Passes)
}

// compareView renders both lanes side by side plus the verdict panel.
func (m AppModel) compareView() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("AlgoLens — Comparison") + "\n\n")

	if m.Scheduler == nil {
		b.WriteString("  " + dimStyle.Render("comparison unavailable") + "\n")
		return b.String()
	}

	left := m.laneView("A", m.AlgoA, m.LaneA)
	right := m.laneView("B", m.AlgoB, m.LaneB)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n" + panelStyle.Render(m.verdictPanel()) + "\n")

	return b.String()
}

// laneView renders one comparison lane: name, current event's array
// and that lane's own counters.
func (m AppModel) laneView(tag string, algo core.Algorithm, lane *compare.Lane) string {
	step := lane.Step()
	status := "running"
	if lane.Done() {
		status = "finished"
	}

	body := fmt.Sprintf("%s\n\n%s\n%s\n\n%s",
		labelStyle.Render(tag+": "+algo.Title()),
		renderArray(step.After, step.HighlightsAfter),
		explainStyle.Render(step.Label),
		dimStyle.Render(fmt.Sprintf("event %d/%d · %s · cmp %d · swp %d",
			lane.Cursor()+1, len(lane.Timeline), status,
			step.Metrics.Comparisons, step.Metrics.Swaps)))

	return panelStyle.Render(body)
}

// verdictPanel shows the work estimate always, and the speed verdict
// once both lanes have finished.
func (m AppModel) verdictPanel() string {
	workA := compare.Work(m.LaneA.Trace, m.LaneA.Timeline, m.Cfg.Work)
	workB := compare.Work(m.LaneB.Trace, m.LaneB.Timeline, m.Cfg.Work)
	verdict := compare.ResolveSpeed(m.LaneA.Duration(), m.LaneB.Duration(), m.Cfg.TieEpsilon.Std())

	return fmt.Sprintf("work  A=%d  B=%d  → %s\nspeed A=%s  B=%s  → %s",
		workA, workB, verdictStyle.Render(compare.WorkWinner(workA, workB).String()),
		verdict.LabelA, verdict.LabelB, verdictStyle.Render(verdict.Winner.String()))
}

// helpView lists the key bindings.
func (m AppModel) helpView() string {
	return dimStyle.Render(`
  space  play / pause          a  next algorithm
  →, l   step forward          i  enter a new array
  ←, h   step backward         c  toggle comparison view
  g / G  first / last step     r  reset playback
  ?      close this help       q  quit
`)
}

// renderArray paints each value with the color of its resolved
// highlight state.
func renderArray(values []int, hl core.Highlights) string {
	if len(values) == 0 {
		return dimStyle.Render("(empty)")
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = cellStyles[hl.Resolve(i)].Render(fmt.Sprintf("%3d", v))
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// renderPointers lays pointer names under their indices, e.g.
// "i=2 j=3 pivot=6", in deterministic name order.
func renderPointers(ptrs core.Pointers, n int) string {
	if len(ptrs) == 0 {
		return ""
	}

	names := make([]string, 0, len(ptrs))
	for name := range ptrs {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		if idx := ptrs[name]; idx >= 0 && idx < n {
			parts = append(parts, fmt.Sprintf("%s=%d", name, idx))
		}
	}

	return strings.Join(parts, "  ")
}
