// Package gesture defines the event model shared by the gestureflow
// pipeline.
//
// A gesture event is a typed interaction notification (scroll, pinch,
// fling) moving from an input source toward a rendering consumer. The
// pipeline classifies events only by their Type; the payload (positions,
// deltas, velocities) is carried opaquely for the consumer.
//
// Events are value types. Copying an Event is cheap and no shared
// mutable ownership exists anywhere in the pipeline. The one mutable
// part of an event is its latency Trace, which accumulates component
// markers as the event moves through the system.
package gesture
