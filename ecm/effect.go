package ecm

import "time"

// Timer tracks an optional expiry duration from the moment it was started.
type Timer struct {
	duration time.Duration
	start    time.Time
}

// NewTimer starts a timer that has elapsed after d.
func NewTimer(d time.Duration) *Timer {
	return &Timer{duration: d, start: time.Now()}
}

// HasElapsed reports whether the timer's duration has passed.
func (t *Timer) HasElapsed() bool {
	if t == nil {
		return false
	}
	return time.Since(t.start) >= t.duration
}

// EffectBase is embedded by Effect-tagged component types. It carries the
// cleanup flag and optional expiry timer the source's test helpers
// (markForCleanup, isEffectExpired) operate on.
type EffectBase struct {
	Cleanup bool
	Timer   *Timer
}

// EffectLike is satisfied by any component that embeds EffectBase, exposing
// the pointer receiver MarkForCleanup and IsEffectExpired need.
type EffectLike interface {
	effect() *EffectBase
}

func (e *EffectBase) effect() *EffectBase { return e }

// MarkForCleanup sets e's cleanup flag, the Go equivalent of the source's
// markForCleanup(effect) closure.
func MarkForCleanup[T EffectLike](e T) {
	e.effect().Cleanup = true
}

// IsEffectExpired reports whether e has been marked for cleanup or its
// timer (if any) has elapsed, the Go equivalent of the source's
// isEffectExpired(effect) closure.
func IsEffectExpired[T EffectLike](e T) bool {
	eff := e.effect()
	if eff.Cleanup {
		return true
	}
	return eff.Timer.HasElapsed()
}
