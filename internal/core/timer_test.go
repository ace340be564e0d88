package core

import (
	"testing"
	"time"
)

// drain counts how many times the timer fires.
func drain(t *Timer) int {
	n := 0
	for t.Fire() {
		n++
	}
	return n
}

func TestTimerStopped(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	tm.Add(time.Second)

	if tm.Running() {
		t.Error("new timer should be stopped")
	}
	if n := drain(tm); n != 0 {
		t.Errorf("stopped timer fired %d times", n)
	}
}

func TestTimerFiring(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	tm.Start()

	tm.Add(250 * time.Millisecond)
	if n := drain(tm); n != 2 {
		t.Errorf("expected 2 firings after 250ms, got %d", n)
	}

	// Leftover 50ms carries into the next period
	tm.Add(50 * time.Millisecond)
	if n := drain(tm); n != 1 {
		t.Errorf("expected leftover time to complete a period, got %d firings", n)
	}
}

func TestTimerSetPeriod(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	tm.Start()
	tm.Add(60 * time.Millisecond)

	tm.SetPeriod(50 * time.Millisecond)
	if tm.Period() != 50*time.Millisecond {
		t.Errorf("Period() = %v, expected 50ms", tm.Period())
	}
	if n := drain(tm); n != 1 {
		t.Errorf("shorter period should apply to accumulated time, got %d firings", n)
	}

	tm.SetPeriod(0)
	if tm.Period() != time.Millisecond {
		t.Errorf("period should be floored at 1ms, got %v", tm.Period())
	}
}

func TestTimerStopDiscards(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	tm.Start()
	tm.Add(90 * time.Millisecond)
	tm.Stop()
	tm.Start()
	tm.Add(20 * time.Millisecond)

	if n := drain(tm); n != 0 {
		t.Errorf("restart should discard accumulated time, got %d firings", n)
	}
}

func TestTimerStartIdempotent(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	tm.Start()
	tm.Add(90 * time.Millisecond)
	tm.Start()
	tm.Add(10 * time.Millisecond)

	if n := drain(tm); n != 1 {
		t.Errorf("Start on a running timer should keep accumulated time, got %d firings", n)
	}
}
