package core

import "time"

// Timer is a fixed-step repeating timer driven by an external clock.
// The owner feeds elapsed time with Add and drains due firings with Fire,
// which keeps simulations deterministic regardless of wall-clock jitter.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
	running bool
}

// NewTimer creates a stopped timer with the given period.
func NewTimer(period time.Duration) *Timer {
	t := &Timer{}
	t.SetPeriod(period)
	return t
}

// Start begins accumulating time. Starting a running timer has no effect.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.running = true
	t.elapsed = 0
}

// Stop halts future firings and discards accumulated time.
func (t *Timer) Stop() {
	t.running = false
	t.elapsed = 0
}

// Running reports whether the timer is started.
func (t *Timer) Running() bool {
	return t.running
}

// Period returns the delay between firings.
func (t *Timer) Period() time.Duration {
	return t.period
}

// SetPeriod changes the delay between firings; it applies from the next firing on.
// Periods below one millisecond are raised to one millisecond.
func (t *Timer) SetPeriod(d time.Duration) {
	if d < time.Millisecond {
		d = time.Millisecond
	}
	t.period = d
}

// Add accumulates elapsed time. Ignored while stopped.
func (t *Timer) Add(dt time.Duration) {
	if !t.running || dt <= 0 {
		return
	}
	t.elapsed += dt
}

// Fire consumes one period of accumulated time and reports whether the timer fired.
// Callers loop on Fire until it returns false.
func (t *Timer) Fire() bool {
	if !t.running || t.elapsed < t.period {
		return false
	}
	t.elapsed -= t.period
	return true
}
