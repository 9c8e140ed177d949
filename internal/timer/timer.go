// Package timer implements the time-accounting state machine for one
// kitchen station: elapsed-time accumulation across pause/resume
// cycles, alarm-threshold detection, and ring/silence bookkeeping.
//
// The package never reads the wall clock. Every operation that needs
// the current time takes it as an argument, so behavior is fully
// deterministic under test.
package timer

import (
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of a Timer.
type State string

const (
	// StateIdle means the timer has never been started (or was reset).
	StateIdle State = "idle"
	// StateRunning means a segment is currently accumulating time.
	StateRunning State = "running"
	// StatePaused means the timer holds accumulated time but no
	// segment is active.
	StatePaused State = "paused"
)

// Timer tracks one station's session. The zero value is not usable;
// construct with New.
type Timer struct {
	state State

	// sessionID identifies the current session (first start through
	// reset). Assigned on the first start, cleared only by Reset.
	sessionID string

	// sessionStart is the wall-clock time of the very first start.
	// Set once per session, cleared only by Reset.
	sessionStart *time.Time

	// segmentStart is when the current run-segment began. Non-nil
	// exactly while running.
	segmentStart *time.Time

	// stopTime is the wall-clock time of the most recent pause.
	// Cleared on resume and reset.
	stopTime *time.Time

	// accumulated is the total elapsed time of all completed segments.
	accumulated time.Duration

	// thresholdMin is the alarm threshold in whole minutes.
	// Zero disables the alarm.
	thresholdMin int

	// alarmFiredAt records the first threshold crossing. Set at most
	// once per session, only while running, cleared only by Reset.
	alarmFiredAt *time.Time

	// ringing reports whether the repeating alert is active. The
	// repeating side effect itself is owned by the host; the timer
	// only tracks whether it should be happening.
	ringing bool
}

// New returns an idle Timer with the given alarm threshold in minutes.
// A threshold of zero (or less) means no alarm.
func New(thresholdMinutes int) *Timer {
	t := &Timer{state: StateIdle}
	t.SetThreshold(thresholdMinutes)
	return t
}

// State returns the current lifecycle state.
func (t *Timer) State() State { return t.state }

// SessionID returns the current session's ID, or "" when idle.
func (t *Timer) SessionID() string { return t.sessionID }

// SessionStart returns the time of the very first start of this
// session, or nil when idle.
func (t *Timer) SessionStart() *time.Time { return t.sessionStart }

// StopTime returns the time of the most recent pause, or nil.
func (t *Timer) StopTime() *time.Time { return t.stopTime }

// AlarmFiredAt returns when the alarm first fired this session, or nil.
func (t *Timer) AlarmFiredAt() *time.Time { return t.alarmFiredAt }

// Ringing reports whether the repeating alert should be active.
func (t *Timer) Ringing() bool { return t.ringing }

// Threshold returns the alarm threshold in minutes (0 = no alarm).
func (t *Timer) Threshold() int { return t.thresholdMin }

// SetThreshold sets the alarm threshold in whole minutes. Values of
// zero or less disable the alarm. Changing the threshold never
// re-arms an alarm that already fired this session.
func (t *Timer) SetThreshold(minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	t.thresholdMin = minutes
}

// Start begins or resumes a run-segment at now. Starting an
// already-running timer is a no-op.
func (t *Timer) Start(now time.Time) {
	if t.state == StateRunning {
		return
	}
	if t.sessionStart == nil {
		ts := now
		t.sessionStart = &ts
		t.sessionID = uuid.New().String()
	}
	seg := now
	t.segmentStart = &seg
	t.stopTime = nil
	t.state = StateRunning
}

// Pause folds the in-progress segment into the accumulated total,
// records the stop time, and silences any ringing alert. Pausing a
// timer that is not running is a no-op.
func (t *Timer) Pause(now time.Time) {
	if t.state != StateRunning {
		return
	}
	t.accumulated += now.Sub(*t.segmentStart)
	t.segmentStart = nil
	stop := now
	t.stopTime = &stop
	t.ringing = false
	t.state = StatePaused
}

// Reset returns the timer to the fully idle state, clearing the
// session, all timestamps, the accumulated total, and the alarm. The
// configured threshold survives a reset.
func (t *Timer) Reset() {
	t.state = StateIdle
	t.sessionID = ""
	t.sessionStart = nil
	t.segmentStart = nil
	t.stopTime = nil
	t.accumulated = 0
	t.alarmFiredAt = nil
	t.ringing = false
}

// Silence stops the repeating alert without touching alarmFiredAt, so
// the alarm cannot re-fire within the same session.
func (t *Timer) Silence() {
	t.ringing = false
}

// Elapsed returns the displayed duration: the accumulated total plus
// the in-progress segment while running. It is monotonically
// non-decreasing while running and frozen while paused.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	if t.state == StateRunning {
		return t.accumulated + now.Sub(*t.segmentStart)
	}
	return t.accumulated
}

// Tick performs the periodic alarm check. It returns true exactly
// once per session: on the tick where the elapsed time first reaches
// the threshold. Ticking a non-running timer, or one with no
// threshold, does nothing.
func (t *Timer) Tick(now time.Time) (fired bool) {
	if t.state != StateRunning {
		return false
	}
	if t.thresholdMin <= 0 || t.alarmFiredAt != nil {
		return false
	}
	if t.Elapsed(now) < time.Duration(t.thresholdMin)*time.Minute {
		return false
	}
	at := now
	t.alarmFiredAt = &at
	t.ringing = true
	return true
}

// ProgressFraction returns elapsed/threshold clamped to [0, 1], or 0
// when no threshold is configured.
func (t *Timer) ProgressFraction(now time.Time) float64 {
	if t.thresholdMin <= 0 {
		return 0
	}
	frac := float64(t.Elapsed(now)) / float64(time.Duration(t.thresholdMin)*time.Minute)
	if frac > 1 {
		return 1
	}
	return frac
}
