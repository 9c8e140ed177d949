package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jfalkner/platewatch/internal/audio"
	"github.com/jfalkner/platewatch/internal/cli/formatter"
	"github.com/jfalkner/platewatch/internal/clock"
	"github.com/jfalkner/platewatch/internal/timer"
)

// Config carries the collaborators and startup options for the TUI.
type Config struct {
	Clock    clock.Clock
	Tone     audio.ToneGenerator
	Logger   *slog.Logger
	Stations int // 1 or 2
	AlarmMin int // default threshold per station, 0 = none
	Muted    bool
}

// appModel is the root bubbletea Model: one or two independent
// station timers, a shared display tick, and per-station bell loops.
type appModel struct {
	clock  clock.Clock
	tone   audio.ToneGenerator
	logger *slog.Logger

	stations []*station
	focus    int
	muted    bool
	keys     keyMap

	// ticking is true while the 50ms display tick is scheduled.
	// Exactly one tick loop runs regardless of station count.
	ticking bool

	quitting bool
	width    int
	height   int

	// form is the active threshold input, nil when none is open.
	form        *huh.Form
	formStation int
}

func newAppModel(cfg Config) appModel {
	if cfg.Clock == nil {
		cfg.Clock = clock.System
	}
	if cfg.Tone == nil {
		cfg.Tone = audio.Nop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Stations < 1 {
		cfg.Stations = 1
	}
	if cfg.Stations > 2 {
		cfg.Stations = 2
	}

	m := appModel{
		clock:  cfg.Clock,
		tone:   cfg.Tone,
		logger: cfg.Logger,
		muted:  cfg.Muted,
		keys:   defaultKeyMap(),
	}
	for i := 0; i < cfg.Stations; i++ {
		m.stations = append(m.stations, &station{
			name:  fmt.Sprintf("Station %d", i+1),
			timer: timer.New(cfg.AlarmMin),
		})
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m.handleTick()

	case bellMsg:
		return m.handleBell(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Remaining messages (cursor blink etc.) belong to the form.
	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

// ── periodic messages ────────────────────────────────────────────────────────

// handleTick recomputes every running station and performs the alarm
// check. When a station first crosses its threshold it beeps
// immediately and arms that station's bell loop. The tick re-arms
// itself only while at least one station is running.
func (m appModel) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.Now()
	var cmds []tea.Cmd

	for i, st := range m.stations {
		if st.timer.Tick(now) {
			m.logger.Info("alarm fired",
				"station", st.name,
				"session", st.timer.SessionID(),
				"elapsed", st.timer.Elapsed(now))
			cmds = append(cmds, m.beepCmd(), bellCmd(i, st.bellGen))
		}
	}

	m.ticking = m.anyRunning()
	if m.ticking {
		cmds = append(cmds, tickCmd())
	}
	return m, tea.Batch(cmds...)
}

// handleBell repeats one station's alarm beep. A bell message is
// honored only if the station is still ringing and the generation
// matches; anything else is a stale delivery from before a pause or
// reset and is dropped without a sound.
func (m appModel) handleBell(msg bellMsg) (tea.Model, tea.Cmd) {
	if msg.station < 0 || msg.station >= len(m.stations) {
		return m, nil
	}
	st := m.stations[msg.station]
	if !st.timer.Ringing() || msg.gen != st.bellGen {
		return m, nil
	}
	return m, tea.Batch(m.beepCmd(), bellCmd(msg.station, msg.gen))
}

// beepCmd plays one beep unless muted. The tone generator is
// fire-and-forget, so the command itself produces no message.
func (m *appModel) beepCmd() tea.Cmd {
	if m.muted {
		return nil
	}
	tone := m.tone
	return func() tea.Msg {
		tone.Beep()
		return nil
	}
}

func (m *appModel) anyRunning() bool {
	for _, st := range m.stations {
		if st.timer.State() == timer.StateRunning {
			return true
		}
	}
	return false
}

// ── key handling ─────────────────────────────────────────────────────────────

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// An open form captures all other keys.
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Station):
		m.focus = (m.focus + 1) % len(m.stations)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m.toggleFocused()

	case key.Matches(msg, m.keys.Reset):
		st := m.stations[m.focus]
		if st.timer.SessionStart() != nil {
			m.logger.Info("station reset", "station", st.name, "session", st.timer.SessionID())
		}
		st.timer.Reset()
		st.bellGen++
		return m, nil

	case key.Matches(msg, m.keys.Alarm):
		m.formStation = m.focus
		m.form = newThresholdForm(m.stations[m.focus].name, m.stations[m.focus].timer.Threshold())
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
		return m, nil
	}

	return m, nil
}

// keyMap defines the global key bindings.
type keyMap struct {
	Toggle  key.Binding
	Reset   key.Binding
	Alarm   key.Binding
	Station key.Binding
	Mute    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Alarm:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alarm")),
		Station: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "station")),
		Mute:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// toggleFocused starts or pauses the focused station. Starting also
// asks the audio device to resume; some platforms keep it suspended
// until a user-initiated action.
func (m appModel) toggleFocused() (tea.Model, tea.Cmd) {
	st := m.stations[m.focus]
	now := m.clock.Now()

	if st.timer.State() == timer.StateRunning {
		st.timer.Pause(now)
		st.bellGen++
		m.logger.Info("station paused",
			"station", st.name,
			"session", st.timer.SessionID(),
			"elapsed", st.timer.Elapsed(now))
		return m, nil
	}

	m.tone.Resume()
	st.timer.Start(now)
	m.logger.Info("station started", "station", st.name, "session", st.timer.SessionID())

	if !m.ticking {
		m.ticking = true
		return m, tickCmd()
	}
	return m, nil
}

// ── threshold form ───────────────────────────────────────────────────────────

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.form = nil
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		minutes := parseThresholdMinutes(m.form.GetString(thresholdFormKey))
		st := m.stations[m.formStation]
		st.timer.SetThreshold(minutes)
		m.logger.Info("threshold set", "station", st.name, "minutes", minutes)
		m.form = nil
	case huh.StateAborted:
		m.form = nil
	}
	return m, cmd
}

// ── rendering ────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderStations(),
	}
	if m.form != nil {
		sections = append(sections, m.form.View())
	}
	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n")
}

func (m *appModel) renderStations() string {
	now := m.clock.Now()
	panels := make([]string, 0, len(m.stations))
	for i, st := range m.stations {
		panels = append(panels, st.render(now, i == m.focus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func (m *appModel) renderHeader() string {
	header := formatter.StylePurple.Render("platewatch")
	if m.muted {
		header += "  " + formatter.Dim("[muted]")
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	bindings := []key.Binding{m.keys.Toggle, m.keys.Reset, m.keys.Alarm}
	if len(m.stations) > 1 {
		bindings = append(bindings, m.keys.Station)
	}
	bindings = append(bindings, m.keys.Mute, m.keys.Quit)

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
