package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/the-daonm/pomodoro-tui/internal/notify"
	"github.com/the-daonm/pomodoro-tui/internal/pomodoro"
	"github.com/the-daonm/pomodoro-tui/internal/tui"
)

func main() {
	debug := flag.Bool("debug", false, "write debug logs to pomodoro-debug.log")
	notifySkips := flag.Bool("notify-skips", false, "send desktop notifications on manual skips too")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("pomodoro-debug.log", "debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	settings := pomodoro.DefaultSettings()
	clock := pomodoro.NewClock(&settings)
	notifier := notify.Desktop{NotifySkips: *notifySkips}

	app := tui.NewApp(&settings, clock, notifier)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
