package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jfalkner/platewatch/internal/clock"
	"github.com/jfalkner/platewatch/internal/teatest"
)

var testNow = time.Date(2026, 3, 7, 18, 30, 0, 0, time.UTC)

// recordingTone counts beep and resume calls so tests can assert
// exactly when the alert sounded.
type recordingTone struct {
	beeps   int
	resumes int
}

func (r *recordingTone) Beep()   { r.beeps++ }
func (r *recordingTone) Resume() { r.resumes++ }

// TestDriver wraps teatest.Driver with platewatch-specific access to
// the fake clock, the recording tone, and appModel internals.
type TestDriver struct {
	*teatest.Driver
	Clock *clock.Fake
	Tone  *recordingTone
}

func newTestDriver(t *testing.T, stations, alarmMin int) *TestDriver {
	t.Helper()

	fake := clock.NewFake(testNow)
	tone := &recordingTone{}
	m := newAppModel(Config{
		Clock:    fake,
		Tone:     tone,
		Stations: stations,
		AlarmMin: alarmMin,
	})

	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d, Clock: fake, Tone: tone}
}

func (d *TestDriver) model() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) station(i int) *station {
	return d.model().stations[i]
}

// Tick injects one display tick at the fake clock's current time.
// Real tick commands block on timers and are skipped by the driver,
// so tests advance the clock and tick explicitly.
func (d *TestDriver) Tick() {
	d.Send(tickMsg(d.Clock.Now()))
}

// Bell injects a bell delivery for the given station and generation.
func (d *TestDriver) Bell(station, gen int) {
	d.Send(bellMsg{station: station, gen: gen})
}

func backspaceKey() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyBackspace}
}
