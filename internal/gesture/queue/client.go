package queue

import "github.com/dshills/gestureflow/internal/gesture"

// Client receives the queue's output. The queue references a Client but
// does not own it; the session owner manages its lifetime and must keep
// it alive for as long as the queue.
type Client interface {
	// SendEventImmediately delivers a forwarded event to the consumer
	// transport. Fire and forget: the outcome comes back asynchronously
	// through AcknowledgeEvent.
	SendEventImmediately(ev gesture.Event)

	// OnEventAck is invoked exactly once per forwarded event, in the
	// original forwarding order, regardless of the order acknowledgments
	// arrived in.
	OnEventAck(ev gesture.Event, source AckSource, result AckResult)
}
