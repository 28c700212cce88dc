// Package queue implements the ordered gesture dispatch queue at the
// center of the gestureflow pipeline.
//
// The queue sits between an input source and the event consumer. Every
// submitted event passes two gates:
//
//  1. The fling gate. Fling-start and fling-cancel events are handed to
//     the fling redirector and never reach the consumer; the redirector's
//     generic filter may also claim other events (for example scroll
//     updates arriving mid-fling).
//  2. The debounce gate. While a scroll sequence is active, event types
//     other than scroll-update and pinch events are held in a deferral
//     queue to avoid visual bounce when gesture phases stop and restart
//     in rapid succession. The deferral queue flushes when the debounce
//     window elapses with no further scroll updates.
//
// Forwarded events are recorded in an acknowledgment ledger.
// Acknowledgments from the consumer may arrive out of dispatch order;
// the ledger caches them and drains strictly from the head so the
// client's acknowledgment callback always observes original dispatch
// order.
//
// All client callbacks (SendEventImmediately, OnEventAck) are invoked
// with no queue locks held, so a client may synchronously resubmit or
// acknowledge from inside a callback.
package queue
