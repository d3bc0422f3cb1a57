// Package notify delivers phase-change notifications to the desktop
// notification daemon. Delivery failures are returned for display in the
// status line; they never touch timer state.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/the-daonm/pomodoro-tui/internal/pomodoro"
)

// Desktop sends notifications via the platform notifier (D-Bus on Linux,
// Notification Center on macOS, toasts on Windows).
type Desktop struct {
	// NotifySkips also fires on manual skips, not only automatic rollovers.
	NotifySkips bool
}

// PhaseCompleted announces an automatic rollover.
func (d Desktop) PhaseCompleted(c pomodoro.Completion) error {
	return beeep.Notify("Timer Finished", Body(c), "")
}

// PhaseSkipped announces a manual skip, if enabled.
func (d Desktop) PhaseSkipped(c pomodoro.Completion) error {
	if !d.NotifySkips {
		return nil
	}
	return beeep.Notify("Phase Skipped", Body(c), "")
}

// Body renders the notification text for a phase change.
func Body(c pomodoro.Completion) string {
	return fmt.Sprintf("%s is over. Starting %s.", c.From, c.To)
}
