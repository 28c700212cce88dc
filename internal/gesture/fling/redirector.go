package fling

import "github.com/dshills/gestureflow/internal/gesture"

// Velocity is a 2D velocity vector in payload units per second.
type Velocity struct {
	X, Y float64
}

// IsZero returns true if both components are zero.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Redirector decides whether a gesture event belongs to the fling
// animation layer instead of the consumer. The dispatch queue references
// a Redirector but does not own it; the session owner manages its
// lifetime and must keep it alive for as long as the queue.
type Redirector interface {
	// FilterGestureEvent reports whether the animation layer absorbed the
	// event. Absorbed events never reach the consumer.
	FilterGestureEvent(ev gesture.Event) bool

	// ProcessFlingStart hands a fling-start event to the animation layer.
	ProcessFlingStart(ev gesture.Event)

	// ProcessFlingCancel hands a fling-cancel event to the animation layer.
	ProcessFlingCancel(ev gesture.Event)

	// InProgress reports whether a fling animation is currently active.
	InProgress() bool

	// Stop terminates any active fling immediately.
	Stop()

	// CurrentVelocity returns the active fling's velocity, or zero.
	CurrentVelocity() Velocity

	// CancellationDeferred reports whether a fling-cancel arrived that the
	// animation layer has not yet acted on.
	CancellationDeferred() bool

	// RegisterSchedulerObserver subscribes the animation layer to frame
	// scheduling notifications. Called when a scroll sequence begins.
	RegisterSchedulerObserver()

	// UnregisterSchedulerObserver removes the frame scheduling
	// subscription. Called when a scroll sequence ends.
	UnregisterSchedulerObserver()
}

// Nop is a Redirector that claims nothing. Useful for pipelines without
// fling support and as an embedding base for partial fakes.
type Nop struct{}

// FilterGestureEvent always reports not absorbed.
func (Nop) FilterGestureEvent(gesture.Event) bool { return false }

// ProcessFlingStart discards the event.
func (Nop) ProcessFlingStart(gesture.Event) {}

// ProcessFlingCancel discards the event.
func (Nop) ProcessFlingCancel(gesture.Event) {}

// InProgress always reports false.
func (Nop) InProgress() bool { return false }

// Stop does nothing.
func (Nop) Stop() {}

// CurrentVelocity returns zero velocity.
func (Nop) CurrentVelocity() Velocity { return Velocity{} }

// CancellationDeferred always reports false.
func (Nop) CancellationDeferred() bool { return false }

// RegisterSchedulerObserver does nothing.
func (Nop) RegisterSchedulerObserver() {}

// UnregisterSchedulerObserver does nothing.
func (Nop) UnregisterSchedulerObserver() {}
