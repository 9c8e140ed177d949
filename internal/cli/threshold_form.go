package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jfalkner/platewatch/internal/cli/formatter"
)

const thresholdFormKey = "minutes"

// newThresholdForm builds the single-input form for a station's alarm
// threshold. Leaving the field empty means "no alarm".
func newThresholdForm(stationName string, current int) *huh.Form {
	initial := ""
	if current > 0 {
		initial = strconv.Itoa(current)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(thresholdFormKey).
				Title(stationName + ": alarm threshold (minutes)").
				Placeholder("no alarm").
				Value(&initial).
				Validate(validateOptionalMinutes),
		),
	).WithTheme(platewatchHuhTheme()).WithShowHelp(false)
}

// parseThresholdMinutes normalizes threshold input. Empty, non-numeric
// and negative values all disable the alarm rather than erroring.
func parseThresholdMinutes(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// validateOptionalMinutes accepts empty input or a non-negative whole
// number of minutes.
func validateOptionalMinutes(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("enter minutes as a whole number")
	}
	return nil
}

// platewatchHuhTheme returns a custom huh theme using the shared palette.
func platewatchHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
