package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_TracksWallClock(t *testing.T) {
	before := time.Now()
	got := System.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFake_AdvanceAndSet(t *testing.T) {
	start := time.Date(2026, 3, 7, 18, 30, 0, 0, time.UTC)
	f := NewFake(start)

	assert.Equal(t, start, f.Now())
	assert.Equal(t, start, f.Now(), "fake does not move on its own")

	f.Advance(65 * time.Second)
	assert.Equal(t, start.Add(65*time.Second), f.Now())

	later := start.Add(time.Hour)
	f.Set(later)
	assert.Equal(t, later, f.Now())
}
