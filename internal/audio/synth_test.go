package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(buf []byte) []int16 {
	samples := make([]int16, len(buf)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	return samples
}

// maxAbs returns the peak absolute amplitude over samples[from:to].
func maxAbs(samples []int16, from, to int) int {
	peak := 0
	for _, v := range samples[from:to] {
		a := int(v)
		if a < 0 {
			a = -a
		}
		if a > peak {
			peak = a
		}
	}
	return peak
}

// atMs converts a millisecond offset to a sample index.
func atMs(ms int) int {
	return ms * sampleRate / 1000
}

func TestBeepPCM_Duration(t *testing.T) {
	buf := beepPCM()
	wantSamples := int(BeepDuration.Seconds() * sampleRate)
	require.Equal(t, wantSamples*2, len(buf), "600ms of mono 16-bit PCM")
}

func TestBeepPCM_StartsAndEndsSilent(t *testing.T) {
	samples := decode(beepPCM())
	assert.Zero(t, samples[0])
	// Within the last millisecond the release envelope is near zero.
	tail := maxAbs(samples, atMs(599), len(samples))
	tailLimit := 0.02 * beepGain * math.MaxInt16
	assert.Less(t, tail, int(tailLimit)+1)
}

func TestBeepPCM_EnvelopeShape(t *testing.T) {
	samples := decode(beepPCM())

	early := maxAbs(samples, 0, atMs(10))
	holdPeak := maxAbs(samples, atMs(100), atMs(400))
	release := maxAbs(samples, atMs(560), atMs(590))

	assert.Less(t, early, holdPeak, "attack ramp must be quieter than the hold")
	assert.Less(t, release, holdPeak, "release ramp must be quieter than the hold")

	// Both square waves aligned give the full configured gain at peak.
	peak := beepGain * math.MaxInt16
	want := int(peak)
	assert.InDelta(t, want, holdPeak, float64(want)/50)
}

func TestBeepPCM_NeverExceedsGain(t *testing.T) {
	samples := decode(beepPCM())
	peak := beepGain * math.MaxInt16
	limit := int(peak) + 1
	assert.LessOrEqual(t, maxAbs(samples, 0, len(samples)), limit)
}

func TestSquare_Alternates(t *testing.T) {
	// 800Hz: 1.25ms period, 0.625ms half-period.
	assert.Equal(t, 1.0, square(800, 0))
	assert.Equal(t, 1.0, square(800, 0.0003))
	assert.Equal(t, -1.0, square(800, 0.0007))
	assert.Equal(t, 1.0, square(800, 0.00125))
}

func TestEnvelope(t *testing.T) {
	cases := []struct {
		name string
		ts   float64
		want float64
	}{
		{"before start", -0.01, 0},
		{"at start", 0, 0},
		{"mid attack", 0.025, 0.5},
		{"attack done", 0.05, 1},
		{"hold", 0.3, 1},
		{"mid release", 0.55, 0.5},
		{"end", 0.6, 0},
		{"past end", 0.7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, envelope(tc.ts), 1e-9)
		})
	}
}

func TestNop_IsSilentAndSafe(t *testing.T) {
	var tone ToneGenerator = Nop{}
	tone.Beep()
	tone.Resume()
}
