package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00.00"},
		{-time.Second, "00:00.00"},
		{10 * time.Millisecond, "00:00.01"},
		{990 * time.Millisecond, "00:00.99"},
		{time.Second, "00:01.00"},
		{65 * time.Second, "01:05.00"},
		{65*time.Second + 370*time.Millisecond, "01:05.37"},
		{59*time.Minute + 59*time.Second, "59:59.00"},
		{2 * time.Hour, "120:00.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatClock(tc.d), "d=%s", tc.d)
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{-3, "0m"},
		{5, "5m"},
		{60, "1h"},
		{95, "1h 35m"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatMinutes(tc.min), "min=%d", tc.min)
	}
}
