package pomodoro

import "time"

// Field names one tunable setting.
type Field int

const (
	FieldFocus Field = iota
	FieldShortBreak
	FieldLongBreak
	FieldInterval
)

var fieldNames = map[Field]string{
	FieldFocus:      "Focus Duration",
	FieldShortBreak: "Short Break Duration",
	FieldLongBreak:  "Long Break Duration",
	FieldInterval:   "Long Break Interval",
}

func (f Field) String() string { return fieldNames[f] }

// Bounds and default adjustment steps. Durations are minutes.
const (
	MinMinutes  = 1
	MaxMinutes  = 180
	MinInterval = 1
	MaxInterval = 12

	DurationStep = 5
	IntervalStep = 1
)

// Settings holds the configurable phase durations and the long-break
// interval. Adjustments saturate at the bounds and never error.
type Settings struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
	LongBreakInterval int
}

func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakInterval: 4,
	}
}

func (s *Settings) Increase(f Field, step int) { s.Set(f, s.Value(f)+step) }
func (s *Settings) Decrease(f Field, step int) { s.Set(f, s.Value(f)-step) }

// Step returns the default adjustment step for a field.
func (f Field) Step() int {
	if f == FieldInterval {
		return IntervalStep
	}
	return DurationStep
}

// Value returns the current value of a field, in minutes for durations.
func (s *Settings) Value(f Field) int {
	switch f {
	case FieldShortBreak:
		return s.ShortBreakMinutes
	case FieldLongBreak:
		return s.LongBreakMinutes
	case FieldInterval:
		return s.LongBreakInterval
	default:
		return s.FocusMinutes
	}
}

// Set assigns an absolute value to a field, clamped to its bounds.
func (s *Settings) Set(f Field, v int) {
	switch f {
	case FieldShortBreak:
		s.ShortBreakMinutes = clamp(v, MinMinutes, MaxMinutes)
	case FieldLongBreak:
		s.LongBreakMinutes = clamp(v, MinMinutes, MaxMinutes)
	case FieldInterval:
		s.LongBreakInterval = clamp(v, MinInterval, MaxInterval)
	default:
		s.FocusMinutes = clamp(v, MinMinutes, MaxMinutes)
	}
}

// DurationFor maps a phase to its configured duration.
func (s *Settings) DurationFor(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return time.Duration(s.ShortBreakMinutes) * time.Minute
	case PhaseLongBreak:
		return time.Duration(s.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(s.FocusMinutes) * time.Minute
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
