package fling

import (
	"sync"

	"github.com/dshills/gestureflow/internal/gesture"
)

// Tracker is a Redirector that maintains fling lifecycle state without
// any animation physics: it records whether a fling is in progress, the
// velocity the fling started with, and whether a cancellation arrived
// before a fling it could apply to.
//
// While a fling it owns is in progress, Tracker absorbs scroll-update
// events: those would fight the animation the fling layer is driving.
type Tracker struct {
	mu sync.Mutex

	inProgress         bool
	velocity           Velocity
	cancelDeferred     bool
	observerRegistered int
}

// NewTracker creates an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// FilterGestureEvent absorbs scroll updates while a fling is active.
func (t *Tracker) FilterGestureEvent(ev gesture.Event) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.inProgress && ev.Type == gesture.TypeScrollUpdate
}

// ProcessFlingStart activates a fling with the event's release velocity.
func (t *Tracker) ProcessFlingStart(ev gesture.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.inProgress = true
	t.velocity = Velocity{X: ev.VelocityX, Y: ev.VelocityY}
	t.cancelDeferred = false
}

// ProcessFlingCancel stops an active fling. A cancel with no active
// fling is recorded as deferred until the next fling start.
func (t *Tracker) ProcessFlingCancel(ev gesture.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inProgress {
		t.stopLocked()
		return
	}
	t.cancelDeferred = true
}

// InProgress reports whether a fling is active.
func (t *Tracker) InProgress() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inProgress
}

// Stop terminates any active fling.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// stopLocked clears fling state. Caller holds the mutex.
func (t *Tracker) stopLocked() {
	t.inProgress = false
	t.velocity = Velocity{}
}

// CurrentVelocity returns the active fling's velocity, or zero.
func (t *Tracker) CurrentVelocity() Velocity {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.velocity
}

// CancellationDeferred reports whether a cancel arrived with no fling
// to apply to.
func (t *Tracker) CancellationDeferred() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelDeferred
}

// RegisterSchedulerObserver counts a frame scheduling subscription.
func (t *Tracker) RegisterSchedulerObserver() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observerRegistered++
}

// UnregisterSchedulerObserver removes a frame scheduling subscription.
func (t *Tracker) UnregisterSchedulerObserver() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.observerRegistered > 0 {
		t.observerRegistered--
	}
}

// ObserverCount returns the current scheduler subscription count.
func (t *Tracker) ObserverCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.observerRegistered
}
