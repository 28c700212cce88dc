package fling

import (
	"testing"

	"github.com/dshills/gestureflow/internal/gesture"
)

func flingStart(vx, vy float64) gesture.Event {
	ev := gesture.New(gesture.TypeFlingStart)
	ev.VelocityX = vx
	ev.VelocityY = vy
	return ev
}

func TestTrackerStartActivatesFling(t *testing.T) {
	tracker := NewTracker()

	if tracker.InProgress() {
		t.Fatal("new tracker should be idle")
	}

	tracker.ProcessFlingStart(flingStart(120, -40))

	if !tracker.InProgress() {
		t.Error("fling should be in progress after start")
	}
	vel := tracker.CurrentVelocity()
	if vel.X != 120 || vel.Y != -40 {
		t.Errorf("CurrentVelocity() = %+v, want {120 -40}", vel)
	}
}

func TestTrackerCancelStopsActiveFling(t *testing.T) {
	tracker := NewTracker()
	tracker.ProcessFlingStart(flingStart(100, 0))

	tracker.ProcessFlingCancel(gesture.New(gesture.TypeFlingCancel))

	if tracker.InProgress() {
		t.Error("fling should stop on cancel")
	}
	if !tracker.CurrentVelocity().IsZero() {
		t.Errorf("velocity should reset on cancel, got %+v", tracker.CurrentVelocity())
	}
	if tracker.CancellationDeferred() {
		t.Error("cancel applied to an active fling should not be deferred")
	}
}

func TestTrackerCancelWithoutFlingIsDeferred(t *testing.T) {
	tracker := NewTracker()

	tracker.ProcessFlingCancel(gesture.New(gesture.TypeFlingCancel))

	if !tracker.CancellationDeferred() {
		t.Error("cancel with no active fling should be deferred")
	}

	// Next fling start clears the deferred cancellation.
	tracker.ProcessFlingStart(flingStart(50, 50))
	if tracker.CancellationDeferred() {
		t.Error("fling start should clear deferred cancellation")
	}
}

func TestTrackerAbsorbsScrollUpdateDuringFling(t *testing.T) {
	tracker := NewTracker()

	update := gesture.New(gesture.TypeScrollUpdate)
	if tracker.FilterGestureEvent(update) {
		t.Error("idle tracker should not absorb scroll updates")
	}

	tracker.ProcessFlingStart(flingStart(100, 0))

	if !tracker.FilterGestureEvent(update) {
		t.Error("active tracker should absorb scroll updates")
	}
	if tracker.FilterGestureEvent(gesture.New(gesture.TypeScrollEnd)) {
		t.Error("scroll-end must pass through even mid-fling")
	}
	if tracker.FilterGestureEvent(gesture.New(gesture.TypePinchUpdate)) {
		t.Error("pinch events must pass through mid-fling")
	}
}

func TestTrackerStop(t *testing.T) {
	tracker := NewTracker()
	tracker.ProcessFlingStart(flingStart(100, 0))

	tracker.Stop()

	if tracker.InProgress() {
		t.Error("Stop should end the fling")
	}
}

func TestTrackerObserverCount(t *testing.T) {
	tracker := NewTracker()

	tracker.RegisterSchedulerObserver()
	tracker.RegisterSchedulerObserver()
	if got := tracker.ObserverCount(); got != 2 {
		t.Errorf("ObserverCount() = %d, want 2", got)
	}

	tracker.UnregisterSchedulerObserver()
	if got := tracker.ObserverCount(); got != 1 {
		t.Errorf("ObserverCount() = %d, want 1", got)
	}

	// Unregister never goes negative.
	tracker.UnregisterSchedulerObserver()
	tracker.UnregisterSchedulerObserver()
	if got := tracker.ObserverCount(); got != 0 {
		t.Errorf("ObserverCount() = %d, want 0", got)
	}
}

func TestNopClaimsNothing(t *testing.T) {
	var r Redirector = Nop{}

	if r.FilterGestureEvent(gesture.New(gesture.TypeScrollUpdate)) {
		t.Error("Nop should not absorb events")
	}
	if r.InProgress() {
		t.Error("Nop should never report a fling in progress")
	}
	if !r.CurrentVelocity().IsZero() {
		t.Error("Nop velocity should be zero")
	}
}
