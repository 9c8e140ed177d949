// Package audio provides the alert tone for the timers: a short
// dual-tone square-wave beep synthesized in-process and played
// best-effort. A beep can never fail observably; problems are logged
// and the caller continues.
package audio

// ToneGenerator synthesizes one alert beep on demand.
type ToneGenerator interface {
	// Beep plays one beep. Best-effort and non-blocking: it never
	// returns an error, never panics, and never waits for playback.
	Beep()

	// Resume kicks a suspended audio device. Call on the first
	// user-initiated start; some platforms refuse to emit sound
	// before that.
	Resume()
}

// Nop is a ToneGenerator that stays silent. It stands in when audio
// cannot be initialized or the user asked for --mute.
type Nop struct{}

func (Nop) Beep()   {}
func (Nop) Resume() {}
