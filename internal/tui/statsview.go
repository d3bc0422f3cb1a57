package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/the-daonm/pomodoro-tui/internal/pomodoro"
)

// statsModel shows what happened since the program started: phases finished
// and focus time accrued. Nothing is stored; closing the app clears it.
type statsModel struct {
	tally *pomodoro.Tally

	width  int
	height int
}

func newStatsModel(tally *pomodoro.Tally) statsModel {
	return statsModel{tally: tally}
}

func (m *statsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m statsModel) view() string {
	w := m.width - 4

	title := titleStyle.Render("This Session")

	chartView := m.buildChart()

	focusLine := fmt.Sprintf("  Focus time   %s", formatClock(m.tally.FocusTime))
	countLine := fmt.Sprintf("  Completed    %d focus · %d short · %d long",
		m.tally.FocusDone, m.tally.ShortBreakDone, m.tally.LongBreakDone)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", chartView, "", focusLine, countLine,
		),
	)
}

func (m statsModel) buildChart() string {
	chartWidth := m.width - 10
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if m.height > 0 && m.height < 16 {
		chartHeight = 6
	}

	chart := barchart.New(chartWidth, chartHeight)

	bar := func(label string, count int, color lipgloss.Color) barchart.BarData {
		return barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  label,
				Value: float64(count),
				Style: lipgloss.NewStyle().Foreground(color),
			}},
		}
	}

	chart.PushAll([]barchart.BarData{
		bar("Focus", m.tally.FocusDone, colorFocus),
		bar("Short", m.tally.ShortBreakDone, colorShort),
		bar("Long", m.tally.LongBreakDone, colorLong),
	})
	chart.Draw()

	return chart.View()
}
