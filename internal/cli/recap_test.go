package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecapRows_SkipsIdleStations(t *testing.T) {
	d := newTestDriver(t, 2, 0)

	d.PressKey(' ') // only station 1 ever runs
	d.Clock.Advance(65 * time.Second)
	d.Tick()
	d.PressKey(' ')

	rows := d.model().recapRows(d.Clock.Now())
	require.Len(t, rows, 1)
	assert.Equal(t, "Station 1", rows[0].station)
	assert.Equal(t, 65*time.Second, rows[0].snap.Elapsed)
}

func TestRecapRows_EmptyWhenNothingStarted(t *testing.T) {
	d := newTestDriver(t, 2, 0)
	assert.Empty(t, d.model().recapRows(d.Clock.Now()))
}

func TestPrintRecap_RendersSessionSummary(t *testing.T) {
	d := newTestDriver(t, 1, 1)

	d.PressKey(' ')
	d.Clock.Advance(65 * time.Second)
	d.Tick() // first tick past the 1min threshold: alarm fires
	d.PressKey(' ')

	var buf bytes.Buffer
	printRecap(&buf, d.model().recapRows(d.Clock.Now()))

	out := buf.String()
	assert.Contains(t, out, "Station 1")
	assert.Contains(t, out, "01:05.00")
	assert.Contains(t, out, "18:30:00", "session start time of day")
	assert.Contains(t, out, "18:31:05", "stop time of day")
	assert.Contains(t, out, "fired")
}

func TestPrintRecap_NoOutputWithoutRows(t *testing.T) {
	var buf bytes.Buffer
	printRecap(&buf, nil)
	assert.Zero(t, buf.Len())
}
