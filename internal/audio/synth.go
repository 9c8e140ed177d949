package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// Beep shape: two simultaneous square waves ~40Hz apart produce an
// audible beat that reads as urgency. The envelope ramps in over 50ms,
// holds at a fixed low gain until 500ms, and ramps out by 600ms.
const (
	sampleRate = 44100

	toneLowHz  = 800.0
	toneHighHz = 840.0

	// beepGain keeps the alert well below full scale.
	beepGain = 0.18

	attack       = 50 * time.Millisecond
	hold         = 500 * time.Millisecond
	BeepDuration = 600 * time.Millisecond
)

// beepPCM renders the complete beep as mono signed 16-bit
// little-endian PCM at 44.1kHz.
func beepPCM() []byte {
	n := int(BeepDuration.Seconds() * sampleRate)
	buf := make([]byte, n*2)
	for i := 0; i < n; i++ {
		ts := float64(i) / sampleRate
		v := (square(toneLowHz, ts) + square(toneHighHz, ts)) / 2
		v *= envelope(ts) * beepGain
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(int16(v*math.MaxInt16)))
	}
	return buf
}

// square returns the square wave of the given frequency at time ts,
// in [-1, 1].
func square(hz, ts float64) float64 {
	if math.Mod(ts*hz, 1) < 0.5 {
		return 1
	}
	return -1
}

// envelope returns the amplitude multiplier in [0, 1] at time ts:
// linear attack to 50ms, unity hold to 500ms, linear release to 600ms.
func envelope(ts float64) float64 {
	attackSec := attack.Seconds()
	holdSec := hold.Seconds()
	totalSec := BeepDuration.Seconds()
	switch {
	case ts < 0:
		return 0
	case ts < attackSec:
		return ts / attackSec
	case ts < holdSec:
		return 1
	case ts < totalSec:
		return (totalSec - ts) / (totalSec - holdSec)
	default:
		return 0
	}
}
