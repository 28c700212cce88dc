// Package fling defines the boundary between the dispatch pipeline and
// the fling animation layer.
//
// Once a fling starts, momentum scrolling is driven by an animation
// controller rather than forwarded per-frame to the consumer. The
// dispatch queue never owns that controller; it consults a Redirector to
// decide which events the animation layer claims.
//
// The package ships two implementations: Nop, which claims nothing and
// suits pipelines without fling support, and Tracker, which maintains
// fling lifecycle state (in progress, last velocity, deferred
// cancellation) without implementing any animation physics. Real fling
// physics lives outside this module.
package fling
