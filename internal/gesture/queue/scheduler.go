package queue

import "time"

// Scheduler creates the single-shot timers backing the debounce window.
// Tests substitute a manual implementation to fire expiry deterministically.
type Scheduler interface {
	// AfterFunc schedules fn to run once after d and returns the timer
	// handle. The returned timer must support restarting after it fires.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a single-shot restartable timer handle.
type Timer interface {
	// Reset restarts the timer for the given duration, whether or not it
	// has already fired. Returns true if the timer was still pending.
	Reset(d time.Duration) bool

	// Stop cancels a pending expiry. Returns true if the timer was still
	// pending. Stopping a timer does not flush any queue state.
	Stop() bool
}

// clockScheduler backs timers with the system clock.
type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemScheduler returns a Scheduler backed by the system clock.
func SystemScheduler() Scheduler {
	return clockScheduler{}
}
