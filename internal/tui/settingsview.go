package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/the-daonm/pomodoro-tui/internal/pomodoro"
)

var settingFields = []pomodoro.Field{
	pomodoro.FieldFocus,
	pomodoro.FieldShortBreak,
	pomodoro.FieldLongBreak,
	pomodoro.FieldInterval,
}

// settingsModel adjusts the timer configuration. Arrow keys nudge values by
// the field's step; enter opens a form for exact entry. Every change resets
// the countdown so the clock never runs against a stale duration.
type settingsModel struct {
	settings *pomodoro.Settings
	clock    *pomodoro.Clock

	width  int
	height int

	cursor int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	focusVal    *string
	shortVal    *string
	longVal     *string
	intervalVal *string
}

func newSettingsModel(settings *pomodoro.Settings, clock *pomodoro.Clock) settingsModel {
	fv, sv, lv, iv := "", "", "", ""
	return settingsModel{
		settings:    settings,
		clock:       clock,
		focusVal:    &fv,
		shortVal:    &sv,
		longVal:     &lv,
		intervalVal: &iv,
	}
}

func (m *settingsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(settingFields)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Left):
			f := settingFields[m.cursor]
			m.settings.Decrease(f, f.Step())
			m.clock.Reset()
		case key.Matches(msg, keys.Right):
			f := settingFields[m.cursor]
			m.settings.Increase(f, f.Step())
			m.clock.Reset()
		case key.Matches(msg, keys.Edit):
			return m.showForm()
		}
	}
	return m, nil
}

func (m settingsModel) showForm() (settingsModel, tea.Cmd) {
	*m.focusVal = strconv.Itoa(m.settings.FocusMinutes)
	*m.shortVal = strconv.Itoa(m.settings.ShortBreakMinutes)
	*m.longVal = strconv.Itoa(m.settings.LongBreakMinutes)
	*m.intervalVal = strconv.Itoa(m.settings.LongBreakInterval)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Focus (min)").Value(m.focusVal).Validate(validateInt),
			huh.NewInput().Title("Short break (min)").Value(m.shortVal).Validate(validateInt),
			huh.NewInput().Title("Long break (min)").Value(m.longVal).Validate(validateInt),
			huh.NewInput().Title("Focus sessions before long break").Value(m.intervalVal).Validate(validateInt),
		).Title("Configuration"),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.saveForm()
		return m, func() tea.Msg { return statusMsg{text: "Settings updated"} }
	}

	return m, cmd
}

// saveForm applies the form values through the clamped setters, so direct
// entry obeys the same bounds as arrow adjustments.
func (m settingsModel) saveForm() {
	setIfValid := func(f pomodoro.Field, raw string) {
		if v, err := strconv.Atoi(raw); err == nil {
			m.settings.Set(f, v)
		}
	}
	setIfValid(pomodoro.FieldFocus, *m.focusVal)
	setIfValid(pomodoro.FieldShortBreak, *m.shortVal)
	setIfValid(pomodoro.FieldLongBreak, *m.longVal)
	setIfValid(pomodoro.FieldInterval, *m.intervalVal)
	m.clock.Reset()
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func (m settingsModel) view() string {
	w := m.width - 4

	title := titleStyle.Render("Configuration")

	if m.formActive && m.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, f := range settingFields {
		style := normalItemStyle
		cursor := "  "
		if i == m.cursor {
			style = selectedItemStyle
			cursor = "> "
		}
		unit := "min"
		if f == pomodoro.FieldInterval {
			unit = "sessions"
		}
		label := lipgloss.NewStyle().Width(24).Render(f.String())
		rows = append(rows, style.Render(fmt.Sprintf("%s%s < %02d %s >", cursor, label, m.settings.Value(f), unit)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("↑/↓: select  ←/→: adjust  enter: edit"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
