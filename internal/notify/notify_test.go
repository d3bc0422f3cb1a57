package notify

import (
	"testing"

	"github.com/the-daonm/pomodoro-tui/internal/pomodoro"
)

func TestBody(t *testing.T) {
	got := Body(pomodoro.Completion{From: pomodoro.PhaseFocus, To: pomodoro.PhaseShortBreak})
	want := "FOCUS SESSION is over. Starting SHORT BREAK."
	if got != want {
		t.Fatalf("Body = %q, want %q", got, want)
	}
}

func TestSkipsDisabledByDefault(t *testing.T) {
	d := Desktop{}
	err := d.PhaseSkipped(pomodoro.Completion{From: pomodoro.PhaseFocus, To: pomodoro.PhaseShortBreak})
	if err != nil {
		t.Fatalf("disabled skip notification should be a silent no-op, got %v", err)
	}
}
