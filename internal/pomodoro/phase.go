package pomodoro

// Phase is one of the three stages of the pomodoro cycle.
type Phase int

const (
	PhaseFocus Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

func (p Phase) String() string {
	switch p {
	case PhaseShortBreak:
		return "SHORT BREAK"
	case PhaseLongBreak:
		return "LONG BREAK"
	default:
		return "FOCUS SESSION"
	}
}

// NextPhase applies the pomodoro cycle rule. Completing a focus session
// increments the counter; every interval-th completion earns a long break,
// anything else a short one. Breaks always lead back to focus. Entering a
// long break starts a fresh cycle, so the counter drops to zero there.
func NextPhase(p Phase, completed, interval int) (Phase, int) {
	switch p {
	case PhaseFocus:
		completed++
		if interval > 0 && completed%interval == 0 {
			return PhaseLongBreak, 0
		}
		return PhaseShortBreak, completed
	case PhaseLongBreak:
		return PhaseFocus, 0
	default:
		return PhaseFocus, completed
	}
}
