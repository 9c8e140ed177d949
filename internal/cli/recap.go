package cli

import (
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jfalkner/platewatch/internal/cli/formatter"
	"github.com/jfalkner/platewatch/internal/timer"
	"github.com/rodaine/table"
)

// recapRow is one station's session summary for the post-exit report.
type recapRow struct {
	station string
	snap    timer.Snapshot
}

// recapRows collects a row for every station that still holds a
// session at exit. Reset stations have nothing to report.
func (m appModel) recapRows(now time.Time) []recapRow {
	var rows []recapRow
	for _, st := range m.stations {
		snap := st.timer.Snapshot(now)
		if snap.SessionStart == nil {
			continue
		}
		rows = append(rows, recapRow{station: st.name, snap: snap})
	}
	return rows
}

// printRecap writes the session recap table to w. No output at all if
// no station was ever started.
func printRecap(w io.Writer, rows []recapRow) {
	if len(rows) == 0 {
		return
	}

	headerFmt := color.New(color.FgGreen, color.Bold, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Station", "Session", "Started", "Stopped", "Elapsed", "Alarm").
		WithWriter(w).
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)

	for _, r := range rows {
		tbl.AddRow(
			r.station,
			shortID(r.snap.SessionID),
			formatter.FormatWallClock(*r.snap.SessionStart),
			stopLabel(r.snap),
			formatter.FormatClock(r.snap.Elapsed),
			alarmLabel(r.snap),
		)
	}
	tbl.Print()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func stopLabel(snap timer.Snapshot) string {
	if snap.StopTime != nil {
		return formatter.FormatWallClock(*snap.StopTime)
	}
	if snap.State == timer.StateRunning {
		return "(running)"
	}
	return "-"
}

func alarmLabel(snap timer.Snapshot) string {
	if snap.AlarmFiredAt == nil {
		return "-"
	}
	return "fired " + formatter.FormatWallClock(*snap.AlarmFiredAt)
}
