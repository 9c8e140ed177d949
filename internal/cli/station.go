package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jfalkner/platewatch/internal/cli/formatter"
	"github.com/jfalkner/platewatch/internal/timer"
)

// station couples one timer with its rendering identity and the bell
// generation counter used to cancel the repeating alert.
type station struct {
	name  string
	timer *timer.Timer

	// bellGen invalidates in-flight bell messages. Bumped on every
	// pause and reset.
	bellGen int
}

const panelWidth = 34

// render draws the station panel: clock face, state pill, threshold
// progress, and session timestamps.
func (st *station) render(now time.Time, focused bool) string {
	snap := st.timer.Snapshot(now)

	var b strings.Builder
	b.WriteString(formatter.Bold(st.name))
	b.WriteString("\n\n")

	face := formatter.FormatClock(snap.Elapsed)
	b.WriteString(formatter.ClockStyle(snap.State, snap.Ringing).Render(face))
	b.WriteString("  ")
	b.WriteString(formatter.StatePill(snap.State, snap.Ringing))
	b.WriteString("\n\n")

	if snap.ThresholdMin > 0 {
		b.WriteString(formatter.RenderProgress(snap.Progress, panelWidth-12))
		b.WriteString("\n")
		b.WriteString(formatter.Dim("alarm at " + formatter.FormatMinutes(snap.ThresholdMin)))
	} else {
		b.WriteString(formatter.Dim("no alarm set"))
	}
	b.WriteString("\n")

	b.WriteString(renderStamps(snap))

	border := formatter.ColorDim
	if focused {
		border = formatter.ColorHeader
	}
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(panelWidth)
	return panel.Render(b.String())
}

// renderStamps renders the session timestamp lines. Fields absent in
// the current state render as a dim placeholder so the panel height
// stays stable across transitions.
func renderStamps(snap timer.Snapshot) string {
	var lines []string

	if snap.SessionStart != nil {
		lines = append(lines, formatter.Dim("started ")+formatter.FormatWallClock(*snap.SessionStart))
	} else {
		lines = append(lines, formatter.Dim("started -"))
	}

	if snap.StopTime != nil {
		lines = append(lines, formatter.Dim("stopped ")+formatter.FormatWallClock(*snap.StopTime))
	} else {
		lines = append(lines, formatter.Dim("stopped -"))
	}

	if snap.AlarmFiredAt != nil {
		lines = append(lines, formatter.StyleYellow.Render("alarm   "+formatter.FormatWallClock(*snap.AlarmFiredAt)))
	} else {
		lines = append(lines, formatter.Dim("alarm   -"))
	}

	return strings.Join(lines, "\n")
}
