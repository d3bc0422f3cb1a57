package pomodoro

import "time"

// Tally accumulates phase completions for the current run. Nothing here is
// persisted; the tally dies with the process.
type Tally struct {
	FocusDone      int
	ShortBreakDone int
	LongBreakDone  int
	FocusTime      time.Duration
}

// Record counts a finished phase. elapsed is the time actually spent in it,
// which may be less than the configured duration when the phase was skipped.
func (t *Tally) Record(p Phase, elapsed time.Duration) {
	switch p {
	case PhaseFocus:
		t.FocusDone++
		t.FocusTime += elapsed
	case PhaseShortBreak:
		t.ShortBreakDone++
	case PhaseLongBreak:
		t.LongBreakDone++
	}
}
