package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/the-daonm/pomodoro-tui/internal/notify"
	"github.com/the-daonm/pomodoro-tui/internal/pomodoro"
)

// timerModel drives the countdown view. It owns tick delivery to the clock
// and turns rollovers into desktop notifications and status messages.
type timerModel struct {
	clock    *pomodoro.Clock
	settings *pomodoro.Settings
	tally    *pomodoro.Tally
	notifier notify.Desktop

	width  int
	height int

	gauge progress.Model
}

func newTimerModel(clock *pomodoro.Clock, settings *pomodoro.Settings, tally *pomodoro.Tally, notifier notify.Desktop) timerModel {
	g := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	return timerModel{
		clock:    clock,
		settings: settings,
		tally:    tally,
		notifier: notifier,
		gauge:    g,
	}
}

func (m *timerModel) setSize(w, h int) {
	m.width = w
	m.height = h
	gw := w - 12
	if gw < 10 {
		gw = 10
	}
	m.gauge.Width = gw
}

func (m timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if comp, ok := m.clock.Tick(); ok {
			m.tally.Record(comp.From, m.settings.DurationFor(comp.From))
			return m, m.announceCompletion(comp)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Toggle):
			m.clock.ToggleRunning()
			return m, nil
		case key.Matches(msg, keys.Reset):
			m.clock.Reset()
			return m, func() tea.Msg { return statusMsg{text: "Timer reset"} }
		case key.Matches(msg, keys.Skip):
			elapsed := m.settings.DurationFor(m.clock.Snapshot().Phase) - m.clock.Snapshot().Remaining
			comp := m.clock.SkipToNext()
			m.tally.Record(comp.From, elapsed)
			return m, m.announceSkip(comp)
		case key.Matches(msg, keys.Focus):
			m.clock.SelectPhase(pomodoro.PhaseFocus)
			return m, nil
		case key.Matches(msg, keys.Short):
			m.clock.SelectPhase(pomodoro.PhaseShortBreak)
			return m, nil
		case key.Matches(msg, keys.Long):
			m.clock.SelectPhase(pomodoro.PhaseLongBreak)
			return m, nil
		}
	}
	return m, nil
}

func (m timerModel) announceCompletion(c pomodoro.Completion) tea.Cmd {
	return func() tea.Msg {
		if err := m.notifier.PhaseCompleted(c); err != nil {
			return statusMsg{text: fmt.Sprintf("notification failed: %v", err), isError: true}
		}
		return statusMsg{text: notify.Body(c)}
	}
}

func (m timerModel) announceSkip(c pomodoro.Completion) tea.Cmd {
	return func() tea.Msg {
		if err := m.notifier.PhaseSkipped(c); err != nil {
			return statusMsg{text: fmt.Sprintf("notification failed: %v", err), isError: true}
		}
		return statusMsg{text: "Skipped to " + c.To.String()}
	}
}

func (m timerModel) view() string {
	w := m.width - 4
	snap := m.clock.Snapshot()
	color := phaseColor(snap.Phase)

	phaseLabel := lipgloss.NewStyle().Bold(true).Foreground(color).Render(snap.Phase.String())

	status := "[ PAUSED ]"
	if snap.Running {
		status = "[ RUNNING ]"
	}
	statusLine := mutedStyle.Render(status)

	timeStyle := lipgloss.NewStyle().Bold(true).Foreground(colorFg)
	if snap.Running {
		timeStyle = timeStyle.Foreground(color)
	}
	timeDisplay := timeStyle.Width(w - 6).Align(lipgloss.Center).Render(formatClock(snap.Remaining))

	total := m.settings.DurationFor(snap.Phase)
	ratio := 0.0
	if total > 0 {
		ratio = float64(snap.Remaining) / float64(total)
	}
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	gauge := m.gauge.ViewAs(ratio)

	content := lipgloss.JoinVertical(lipgloss.Center,
		phaseLabel,
		statusLine,
		"",
		timeDisplay,
		"",
		gauge,
		"",
		m.renderCycle(snap),
	)

	controls := mutedStyle.Render("space: start/pause  r: reset  n: next  1/2/3: phase")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, content, "", controls),
	)
}

// renderCycle draws one dot per focus session in the current cycle.
func (m timerModel) renderCycle(snap pomodoro.Snapshot) string {
	interval := m.settings.LongBreakInterval
	var parts []string
	for i := 0; i < interval; i++ {
		switch {
		case i < snap.CompletedFocus:
			parts = append(parts, lipgloss.NewStyle().Foreground(colorShort).Render("●"))
		case i == snap.CompletedFocus && snap.Phase == pomodoro.PhaseFocus:
			parts = append(parts, lipgloss.NewStyle().Foreground(colorFocus).Render("◐"))
		default:
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	dots := strings.Join(parts, " ")
	counter := mutedStyle.Render(fmt.Sprintf("  %d/%d", snap.CompletedFocus, interval))
	return dots + counter
}
