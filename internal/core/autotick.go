package core

import "time"

// AutoTick gates a repeated action behind a fixed wall-clock interval. The
// input layer uses it to pace held-key auto-advance; the board itself never
// sees timing state.
type AutoTick struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewAutoTick constructs a gate that fires at most once per interval.
func NewAutoTick(interval time.Duration) *AutoTick {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &AutoTick{interval: interval, now: time.Now}
}

// Due reports whether the interval has elapsed since the last firing and
// consumes it when it has. The first call after construction or Reset fires
// immediately.
func (a *AutoTick) Due() bool {
	now := a.now()
	if a.last.IsZero() || now.Sub(a.last) >= a.interval {
		a.last = now
		return true
	}
	return false
}

// Reset clears the gate so the next Due call fires immediately.
func (a *AutoTick) Reset() {
	a.last = time.Time{}
}
