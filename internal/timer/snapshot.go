package timer

import "time"

// Snapshot is a read-only view of a Timer at a given instant, for
// rendering and the exit recap.
type Snapshot struct {
	State        State
	SessionID    string
	Elapsed      time.Duration
	SessionStart *time.Time
	StopTime     *time.Time
	AlarmFiredAt *time.Time
	Ringing      bool
	ThresholdMin int
	Progress     float64
}

// Snapshot captures the observable state of the timer at now.
func (t *Timer) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		State:        t.state,
		SessionID:    t.sessionID,
		Elapsed:      t.Elapsed(now),
		SessionStart: t.sessionStart,
		StopTime:     t.stopTime,
		AlarmFiredAt: t.alarmFiredAt,
		Ringing:      t.ringing,
		ThresholdMin: t.thresholdMin,
		Progress:     t.ProgressFraction(now),
	}
}
