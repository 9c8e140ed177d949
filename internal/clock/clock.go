// Package clock abstracts the wall clock so timer logic can be tested
// against a controllable time source.
package clock

import "time"

// Clock provides the current time to the application.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System is the default Clock backed by the standard time package.
var System Clock = systemClock{}
