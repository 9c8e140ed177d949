package audio

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Speaker plays the alert beep through the system audio device via
// oto. One Speaker is created at application start and released at
// teardown; each Beep builds and tears down its own player, so
// concurrent beeps from independent stations need no locking.
type Speaker struct {
	ctx    *oto.Context
	ready  <-chan struct{}
	pcm    []byte
	logger *slog.Logger
}

// NewSpeaker opens the process-wide audio context and pre-renders the
// beep PCM. The returned Speaker is usable immediately; beeps issued
// before the device is ready are dropped (and logged), not queued.
func NewSpeaker(logger *slog.Logger) (*Speaker, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio context: %w", err)
	}
	return &Speaker{
		ctx:    ctx,
		ready:  ready,
		pcm:    beepPCM(),
		logger: logger,
	}, nil
}

// Beep plays one alert beep. Fire-and-forget: the player is torn down
// in the background once the buffer has drained.
func (s *Speaker) Beep() {
	select {
	case <-s.ready:
	default:
		s.logger.Warn("audio device not ready, dropping beep")
		return
	}

	p := s.ctx.NewPlayer(bytes.NewReader(s.pcm))
	p.Play()
	go func() {
		// The buffer is 600ms; the extra margin covers device latency.
		time.Sleep(BeepDuration + 100*time.Millisecond)
		if err := p.Close(); err != nil {
			s.logger.Warn("closing beep player", "error", err)
		}
	}()
}

// Resume asks a suspended audio device to start running again.
func (s *Speaker) Resume() {
	if err := s.ctx.Resume(); err != nil {
		s.logger.Warn("resuming audio context", "error", err)
	}
}

// Close releases the audio device. oto contexts cannot be destroyed,
// so suspend is the closest teardown available.
func (s *Speaker) Close() error {
	return s.ctx.Suspend()
}
