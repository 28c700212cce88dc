package gesture

import "time"

// Event is a single gesture notification. The pipeline inspects only
// Type and Trace; the remaining fields are payload carried through to
// the consumer unchanged.
type Event struct {
	// Type is the event classification. Immutable after creation.
	Type Type

	// X, Y is the pointer position where the gesture occurred.
	X, Y float64

	// DeltaX, DeltaY is the movement or scale delta for update events.
	DeltaX, DeltaY float64

	// VelocityX, VelocityY is the release velocity for fling-start events.
	VelocityX, VelocityY float64

	// Timestamp is when the input source observed the gesture.
	Timestamp time.Time

	// Trace is the append-only latency history of the event.
	Trace Trace
}

// New creates an event of the given type with a fresh latency trace.
func New(t Type) Event {
	return Event{
		Type:      t,
		Timestamp: time.Now(),
		Trace:     NewTrace(),
	}
}

// NewAt creates an event with an explicit source timestamp.
func NewAt(t Type, timestamp time.Time) Event {
	return Event{
		Type:      t,
		Timestamp: timestamp,
		Trace:     NewTrace(),
	}
}
