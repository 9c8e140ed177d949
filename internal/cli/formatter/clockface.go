package formatter

import (
	"fmt"
	"time"
)

// FormatClock renders an elapsed duration as mm:ss.cc with
// centisecond resolution, e.g. 65 seconds renders as "01:05.00".
// Minutes grow past 99 rather than rolling into hours.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, (cs/100)%60, cs%100)
}

// FormatWallClock renders a timestamp as a local HH:MM:SS time of day.
func FormatWallClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatMinutes converts whole minutes into human-friendly form, used
// for the alarm threshold label.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
