package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jfalkner/platewatch/internal/audio"
	"github.com/jfalkner/platewatch/internal/clock"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "platewatch" command. Running it
// opens the full-screen timer UI and, on exit, prints a session recap
// to stdout.
func NewRootCmd(logger *slog.Logger) *cobra.Command {
	var (
		stations int
		alarmMin int
		mute     bool
	)

	cmd := &cobra.Command{
		Use:          "platewatch",
		Short:        "One or two kitchen station timers with a countdown alarm",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stations < 1 || stations > 2 {
				return fmt.Errorf("--stations must be 1 or 2, got %d", stations)
			}
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("platewatch needs an interactive terminal")
			}

			// The speaker lives for the whole program. If audio cannot
			// be initialized the timers run silently; that is never an
			// error.
			var tone audio.ToneGenerator = audio.Nop{}
			if speaker, err := audio.NewSpeaker(logger); err != nil {
				logger.Warn("audio unavailable, continuing silently", "error", err)
			} else {
				tone = speaker
				defer func() {
					if cerr := speaker.Close(); cerr != nil {
						logger.Warn("releasing audio device", "error", cerr)
					}
				}()
			}

			m := newAppModel(Config{
				Clock:    clock.System,
				Tone:     tone,
				Logger:   logger,
				Stations: stations,
				AlarmMin: alarmMin,
				Muted:    mute,
			})

			p := tea.NewProgram(m, tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running timer UI: %w", err)
			}

			if fm, ok := final.(appModel); ok {
				printRecap(cmd.OutOrStdout(), fm.recapRows(clock.System.Now()))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&stations, "stations", "n", envInt("PLATEWATCH_STATIONS", 1), "number of independent station timers (1 or 2)")
	cmd.Flags().IntVarP(&alarmMin, "alarm", "a", envInt("PLATEWATCH_ALARM_MIN", 0), "default alarm threshold in minutes (0 = no alarm)")
	cmd.Flags().BoolVar(&mute, "mute", false, "start with the alert tone muted")

	return cmd
}

// envInt reads an integer environment variable, falling back when the
// variable is unset or not a number.
func envInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
