package pomodoro

import (
	"testing"
	"time"
)

func newTestClock() (*Settings, *Clock) {
	s := DefaultSettings()
	return &s, NewClock(&s)
}

// ============================================================
// Cycle rule
// ============================================================

func TestNextPhaseFromFocus(t *testing.T) {
	next, count := NextPhase(PhaseFocus, 0, 4)
	if next != PhaseShortBreak || count != 1 {
		t.Fatalf("got (%v, %d), want (short break, 1)", next, count)
	}

	next, count = NextPhase(PhaseFocus, 3, 4)
	if next != PhaseLongBreak {
		t.Fatalf("4th completion should earn a long break, got %v", next)
	}
	if count != 0 {
		t.Fatalf("counter should reset entering a long break, got %d", count)
	}
}

func TestNextPhaseFromBreaks(t *testing.T) {
	next, count := NextPhase(PhaseShortBreak, 2, 4)
	if next != PhaseFocus || count != 2 {
		t.Fatalf("short break should lead to focus with counter untouched, got (%v, %d)", next, count)
	}

	next, count = NextPhase(PhaseLongBreak, 2, 4)
	if next != PhaseFocus || count != 0 {
		t.Fatalf("long break should lead to focus with counter cleared, got (%v, %d)", next, count)
	}
}

func TestNextPhaseDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		next, count := NextPhase(PhaseFocus, 1, 4)
		if next != PhaseShortBreak || count != 2 {
			t.Fatalf("iteration %d: got (%v, %d)", i, next, count)
		}
	}
}

func TestCyclePeriodicity(t *testing.T) {
	for _, interval := range []int{1, 2, 4, 6} {
		phase := PhaseFocus
		count := 0
		shortSeen := 0
		longSeen := 0

		// Three full cycles worth of transitions.
		for i := 0; i < 3*2*interval; i++ {
			phase, count = NextPhase(phase, count, interval)
			switch phase {
			case PhaseShortBreak:
				shortSeen++
			case PhaseLongBreak:
				longSeen++
				if count != 0 {
					t.Fatalf("interval %d: counter %d on long break entry, want 0", interval, count)
				}
				if shortSeen != (longSeen)*(interval-1) {
					t.Fatalf("interval %d: %d short breaks before long break %d", interval, shortSeen, longSeen)
				}
			}
			if count < 0 || count >= interval {
				t.Fatalf("interval %d: counter %d out of [0, %d)", interval, count, interval)
			}
		}

		if longSeen != 3 {
			t.Fatalf("interval %d: saw %d long breaks in 3 cycles", interval, longSeen)
		}
	}
}

// ============================================================
// Clock
// ============================================================

func TestClockInit(t *testing.T) {
	_, c := newTestClock()
	snap := c.Snapshot()

	if snap.Phase != PhaseFocus {
		t.Fatalf("new clock should start in focus, got %v", snap.Phase)
	}
	if snap.Remaining != 25*time.Minute {
		t.Fatalf("expected 25min remaining, got %v", snap.Remaining)
	}
	if snap.Running {
		t.Fatal("new clock should start paused")
	}
	if snap.CompletedFocus != 0 {
		t.Fatal("new clock should have no completed sessions")
	}
}

func TestTickWhilePaused(t *testing.T) {
	_, c := newTestClock()

	for i := 0; i < 100; i++ {
		if _, ok := c.Tick(); ok {
			t.Fatal("paused tick should never roll over")
		}
	}
	if c.Snapshot().Remaining != 25*time.Minute {
		t.Fatalf("paused ticks changed remaining: %v", c.Snapshot().Remaining)
	}
}

func TestTickCountdown(t *testing.T) {
	_, c := newTestClock()
	c.ToggleRunning()

	c.Tick()
	if got := c.Snapshot().Remaining; got != 25*time.Minute-time.Second {
		t.Fatalf("one tick should remove one second, remaining %v", got)
	}
}

func TestTickRollover(t *testing.T) {
	_, c := newTestClock()
	c.ToggleRunning()

	// 25 minutes of ticks: rollover fires exactly once, on the last one.
	ticks := int(25 * time.Minute / Quantum)
	rollovers := 0
	var comp Completion
	for i := 0; i < ticks; i++ {
		if got, ok := c.Tick(); ok {
			rollovers++
			comp = got
			if i != ticks-1 {
				t.Fatalf("rollover at tick %d, want %d", i+1, ticks)
			}
		}
	}

	if rollovers != 1 {
		t.Fatalf("expected exactly one rollover, got %d", rollovers)
	}
	if comp.From != PhaseFocus || comp.To != PhaseShortBreak {
		t.Fatalf("unexpected completion %+v", comp)
	}

	snap := c.Snapshot()
	if snap.Phase != PhaseShortBreak {
		t.Fatalf("expected short break after focus, got %v", snap.Phase)
	}
	if snap.Remaining != 5*time.Minute {
		t.Fatalf("expected fresh 5min break, got %v", snap.Remaining)
	}
	if !snap.Running {
		t.Fatal("rollover should keep the clock running")
	}
	if snap.CompletedFocus != 1 {
		t.Fatalf("expected 1 completed focus, got %d", snap.CompletedFocus)
	}
}

func TestToggleRunning(t *testing.T) {
	_, c := newTestClock()

	c.ToggleRunning()
	if !c.Snapshot().Running {
		t.Fatal("first toggle should start the clock")
	}
	c.ToggleRunning()
	if c.Snapshot().Running {
		t.Fatal("second toggle should pause again")
	}
	if c.Snapshot().Remaining != 25*time.Minute {
		t.Fatal("toggling must not touch remaining")
	}
}

func TestReset(t *testing.T) {
	_, c := newTestClock()
	c.ToggleRunning()
	for i := 0; i < 90; i++ {
		c.Tick()
	}

	c.Reset()
	snap := c.Snapshot()
	if snap.Running {
		t.Fatal("reset should pause the clock")
	}
	if snap.Remaining != 25*time.Minute {
		t.Fatalf("reset should refill the countdown, got %v", snap.Remaining)
	}
	if snap.Phase != PhaseFocus {
		t.Fatal("reset must not change the phase")
	}
}

func TestResetPicksUpSettingsChange(t *testing.T) {
	s, c := newTestClock()

	s.Increase(FieldFocus, 5)
	if c.Snapshot().Remaining != 25*time.Minute {
		t.Fatal("adjustment alone should not touch the clock")
	}

	c.Reset()
	if got := c.Snapshot().Remaining; got != 30*time.Minute {
		t.Fatalf("reset should re-read settings, got %v", got)
	}
}

func TestSkipToNext(t *testing.T) {
	_, c := newTestClock()
	c.ToggleRunning()

	comp := c.SkipToNext()
	if comp.From != PhaseFocus || comp.To != PhaseShortBreak {
		t.Fatalf("unexpected completion %+v", comp)
	}

	snap := c.Snapshot()
	if !snap.Running {
		t.Fatal("skip should preserve the running state")
	}
	if snap.CompletedFocus != 1 {
		t.Fatalf("skipping focus counts as a completion, got %d", snap.CompletedFocus)
	}
	if snap.Remaining != 5*time.Minute {
		t.Fatalf("expected fresh break countdown, got %v", snap.Remaining)
	}
}

func TestSkipPreservesPaused(t *testing.T) {
	_, c := newTestClock()

	c.SkipToNext()
	if c.Snapshot().Running {
		t.Fatal("skip on a paused clock should stay paused")
	}
}

func TestSkipFullCycle(t *testing.T) {
	_, c := newTestClock()

	// Focus -> Short -> Focus -> ... -> fourth Focus completion enters the
	// long break. With interval 4 that takes seven skips.
	for i := 0; i < 7; i++ {
		c.SkipToNext()
	}

	snap := c.Snapshot()
	if snap.Phase != PhaseLongBreak {
		t.Fatalf("expected long break after 4 focus completions, got %v", snap.Phase)
	}
	if snap.CompletedFocus != 0 {
		t.Fatalf("counter should reset entering the long break, got %d", snap.CompletedFocus)
	}

	c.SkipToNext()
	if got := c.Snapshot().Phase; got != PhaseFocus {
		t.Fatalf("long break should lead back to focus, got %v", got)
	}
}

func TestSelectPhase(t *testing.T) {
	_, c := newTestClock()
	c.SkipToNext() // completedFocus = 1
	c.ToggleRunning()

	c.SelectPhase(PhaseLongBreak)
	snap := c.Snapshot()
	if snap.Phase != PhaseLongBreak {
		t.Fatalf("expected long break, got %v", snap.Phase)
	}
	if snap.Remaining != 15*time.Minute {
		t.Fatalf("expected full long break countdown, got %v", snap.Remaining)
	}
	if snap.Running {
		t.Fatal("manual selection should pause the clock")
	}
	if snap.CompletedFocus != 1 {
		t.Fatalf("manual selection must not touch the counter, got %d", snap.CompletedFocus)
	}
}

func TestSelectCurrentPhaseResets(t *testing.T) {
	_, c := newTestClock()
	c.ToggleRunning()
	for i := 0; i < 30; i++ {
		c.Tick()
	}

	c.SelectPhase(PhaseFocus)
	snap := c.Snapshot()
	if snap.Remaining != 25*time.Minute {
		t.Fatalf("re-selecting the current phase should refill, got %v", snap.Remaining)
	}
	if snap.Running {
		t.Fatal("re-selecting should pause")
	}
}

// ============================================================
// Settings
// ============================================================

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.FocusMinutes != 25 || s.ShortBreakMinutes != 5 || s.LongBreakMinutes != 15 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.LongBreakInterval != 4 {
		t.Fatalf("default interval should be 4, got %d", s.LongBreakInterval)
	}
}

func TestIncreaseSaturates(t *testing.T) {
	s := DefaultSettings()
	for i := 0; i < 40; i++ {
		s.Increase(FieldFocus, 5)
	}
	if s.FocusMinutes != MaxMinutes {
		t.Fatalf("40 increases from 25 should saturate at %d, got %d", MaxMinutes, s.FocusMinutes)
	}
}

func TestDecreaseSaturates(t *testing.T) {
	s := DefaultSettings()
	for i := 0; i < 40; i++ {
		s.Decrease(FieldShortBreak, 5)
	}
	if s.ShortBreakMinutes != MinMinutes {
		t.Fatalf("decreases should floor at %d, got %d", MinMinutes, s.ShortBreakMinutes)
	}
}

func TestIntervalBounds(t *testing.T) {
	s := DefaultSettings()
	for i := 0; i < 20; i++ {
		s.Increase(FieldInterval, 1)
	}
	if s.LongBreakInterval != MaxInterval {
		t.Fatalf("interval should cap at %d, got %d", MaxInterval, s.LongBreakInterval)
	}
	for i := 0; i < 20; i++ {
		s.Decrease(FieldInterval, 1)
	}
	if s.LongBreakInterval != MinInterval {
		t.Fatalf("interval should floor at %d, got %d", MinInterval, s.LongBreakInterval)
	}
}

func TestSetClamps(t *testing.T) {
	s := DefaultSettings()
	s.Set(FieldLongBreak, 999)
	if s.LongBreakMinutes != MaxMinutes {
		t.Fatalf("set should clamp to %d, got %d", MaxMinutes, s.LongBreakMinutes)
	}
	s.Set(FieldLongBreak, -3)
	if s.LongBreakMinutes != MinMinutes {
		t.Fatalf("set should clamp to %d, got %d", MinMinutes, s.LongBreakMinutes)
	}
}

func TestDurationFor(t *testing.T) {
	s := DefaultSettings()
	cases := []struct {
		phase Phase
		want  time.Duration
	}{
		{PhaseFocus, 25 * time.Minute},
		{PhaseShortBreak, 5 * time.Minute},
		{PhaseLongBreak, 15 * time.Minute},
	}
	for _, tc := range cases {
		if got := s.DurationFor(tc.phase); got != tc.want {
			t.Fatalf("DurationFor(%v) = %v, want %v", tc.phase, got, tc.want)
		}
	}
}

// ============================================================
// Tally
// ============================================================

func TestTallyRecord(t *testing.T) {
	var tally Tally
	tally.Record(PhaseFocus, 25*time.Minute)
	tally.Record(PhaseFocus, 10*time.Minute)
	tally.Record(PhaseShortBreak, 5*time.Minute)
	tally.Record(PhaseLongBreak, 15*time.Minute)

	if tally.FocusDone != 2 {
		t.Fatalf("expected 2 focus completions, got %d", tally.FocusDone)
	}
	if tally.FocusTime != 35*time.Minute {
		t.Fatalf("expected 35min focus time, got %v", tally.FocusTime)
	}
	if tally.ShortBreakDone != 1 || tally.LongBreakDone != 1 {
		t.Fatalf("unexpected break counts: %+v", tally)
	}
}
