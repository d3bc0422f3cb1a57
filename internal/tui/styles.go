package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/the-daonm/pomodoro-tui/internal/pomodoro"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#6C63FF")
	colorFocus   = lipgloss.Color("#FF6B6B")
	colorShort   = lipgloss.Color("#2ECC71")
	colorLong    = lipgloss.Color("#7AA2F7")
	colorMuted   = lipgloss.Color("#666666")
	colorWarning = lipgloss.Color("#F39C12")
	colorError   = lipgloss.Color("#E74C3C")
	colorFg      = lipgloss.Color("#C0CAF5")
	colorSubtle  = lipgloss.Color("#414868")
)

func phaseColor(p pomodoro.Phase) lipgloss.Color {
	switch p {
	case pomodoro.PhaseShortBreak:
		return colorShort
	case pomodoro.PhaseLongBreak:
		return colorLong
	default:
		return colorFocus
	}
}

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)
