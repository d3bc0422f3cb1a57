package pomodoro

import "time"

// Quantum is the tick resolution of the clock.
const Quantum = time.Second

// Completion reports a finished phase and its successor. Exactly one is
// produced per rollover, whether automatic (Tick) or manual (SkipToNext).
type Completion struct {
	From Phase
	To   Phase
}

// Snapshot is a read-only view of the clock for rendering.
type Snapshot struct {
	Phase          Phase
	Remaining      time.Duration
	Running        bool
	CompletedFocus int
}

// Clock is the pomodoro countdown state machine. It owns the current phase,
// the remaining time and the completed-focus counter. Durations are read
// from Settings on every phase entry and reset, so adjustments take effect
// the next time a phase starts.
//
// Clock is not safe for concurrent use; all calls must come from the one
// goroutine driving the event loop.
type Clock struct {
	settings *Settings

	phase          Phase
	remaining      time.Duration
	running        bool
	completedFocus int
}

// NewClock returns a paused clock in the focus phase with a full countdown.
func NewClock(s *Settings) *Clock {
	return &Clock{
		settings:  s,
		phase:     PhaseFocus,
		remaining: s.DurationFor(PhaseFocus),
	}
}

// Tick advances the countdown by one quantum. It is a no-op while paused.
// When the countdown expires the clock rolls over to the next phase per the
// cycle rule, reloads that phase's duration, stays running, and reports the
// completion so the caller can notify exactly once.
func (c *Clock) Tick() (Completion, bool) {
	if !c.running {
		return Completion{}, false
	}
	if c.remaining > Quantum {
		c.remaining -= Quantum
		return Completion{}, false
	}
	return c.rollover(), true
}

// ToggleRunning flips between running and paused.
func (c *Clock) ToggleRunning() {
	c.running = !c.running
}

// Reset pauses the clock and refills the countdown for the current phase,
// re-reading Settings so a changed duration is picked up. Phase and counter
// are untouched.
func (c *Clock) Reset() {
	c.running = false
	c.remaining = c.settings.DurationFor(c.phase)
}

// SkipToNext forces the same rollover as an expired countdown, regardless
// of the remaining time. The running state is preserved.
func (c *Clock) SkipToNext() Completion {
	return c.rollover()
}

// SelectPhase jumps straight to the given phase with a full, paused
// countdown. It bypasses the cycle rule and does not touch the counter.
func (c *Clock) SelectPhase(p Phase) {
	c.phase = p
	c.running = false
	c.remaining = c.settings.DurationFor(p)
}

func (c *Clock) rollover() Completion {
	from := c.phase
	c.phase, c.completedFocus = NextPhase(c.phase, c.completedFocus, c.settings.LongBreakInterval)
	c.remaining = c.settings.DurationFor(c.phase)
	return Completion{From: from, To: c.phase}
}

func (c *Clock) Snapshot() Snapshot {
	return Snapshot{
		Phase:          c.phase,
		Remaining:      c.remaining,
		Running:        c.running,
		CompletedFocus: c.completedFocus,
	}
}
