package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Periodic messages driving the two repeating side effects: the
// display refresh and the alarm bell. Both are self-rescheduling
// tea.Tick loops owned by the appModel; neither holds state of its own.

const (
	// tickInterval is the display refresh cadence while any station runs.
	tickInterval = 50 * time.Millisecond

	// bellInterval is the repeat period of the alarm beep while ringing.
	bellInterval = time.Second
)

// tickMsg drives the display refresh and alarm-threshold check.
type tickMsg time.Time

// bellMsg repeats the alarm beep for one ringing station. gen guards
// against stale deliveries: pause and reset bump the station's bell
// generation, so a message scheduled before the transition is
// discarded on arrival. That makes silencing synchronous even though
// the scheduled message cannot be recalled.
type bellMsg struct {
	station int
	gen     int
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func bellCmd(station, gen int) tea.Cmd {
	return tea.Tick(bellInterval, func(time.Time) tea.Msg { return bellMsg{station: station, gen: gen} })
}
