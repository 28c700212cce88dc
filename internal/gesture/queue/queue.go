package queue

import (
	"sync"
	"time"

	"github.com/dshills/gestureflow/internal/gesture"
	"github.com/dshills/gestureflow/internal/gesture/fling"
)

// Queue is the ordered gesture dispatch queue. It owns the deferral
// queue and the acknowledgment ledger exclusively; the client and the
// fling redirector are referenced but not owned.
//
// The queue serializes its own state internally. Client callbacks are
// always invoked with no locks held, so a client may synchronously
// resubmit events or feed acknowledgments back in from a callback.
type Queue struct {
	mu sync.Mutex

	// Collaborators (not owned)
	client Client
	fling  fling.Redirector

	// Debounce state
	debounceInterval time.Duration
	scrolling        bool
	timer            Timer
	deferred         []gesture.Event

	// Events forwarded to the consumer, awaiting acknowledgment
	ledger ledger

	// Drain guard: a drain in progress must not be re-entered, otherwise
	// acknowledgment order is not preserved.
	draining bool

	config  Config
	metrics *Metrics
	sched   Scheduler
}

// New creates a dispatch queue. Both the client and the redirector are
// required and must outlive the queue.
func New(client Client, redirector fling.Redirector, config Config) *Queue {
	if client == nil {
		panic("queue: nil client")
	}
	if redirector == nil {
		panic("queue: nil fling redirector")
	}

	q := &Queue{
		client:           client,
		fling:            redirector,
		debounceInterval: config.DebounceInterval,
		config:           config,
		sched:            config.Scheduler,
	}
	if q.sched == nil {
		q.sched = SystemScheduler()
	}
	if config.EnableMetrics {
		q.metrics = NewMetrics()
	}
	return q
}

// NewWithDefaults creates a dispatch queue with default configuration.
func NewWithDefaults(client Client, redirector fling.Redirector) *Queue {
	return New(client, redirector, DefaultConfig())
}

// SubmitEvent runs an event through the fling gate and the debounce
// policy. It returns true if the event was forwarded to the consumer
// now, false if it was absorbed by the fling layer or deferred by
// debouncing.
func (q *Queue) SubmitEvent(ev gesture.Event) bool {
	if q.filterForFling(ev) {
		if q.metrics != nil {
			q.metrics.recordAbsorbed()
		}
		return false
	}
	return q.debounceOrForward(ev)
}

// filterForFling is the first gate: fling lifecycle events always belong
// to the redirector, and its generic filter may claim anything else.
func (q *Queue) filterForFling(ev gesture.Event) bool {
	switch ev.Type {
	case gesture.TypeFlingStart:
		q.fling.ProcessFlingStart(ev)
		return true
	case gesture.TypeFlingCancel:
		q.fling.ProcessFlingCancel(ev)
		return true
	}
	return q.fling.FilterGestureEvent(ev)
}

// debounceOrForward applies the debounce policy and forwards the event
// if it survives. Fling events reaching this stage are a programmer
// error: the fling gate absorbs them unconditionally.
func (q *Queue) debounceOrForward(ev gesture.Event) bool {
	if ev.Type.IsFling() {
		q.dropInvariantViolation(ev, "debounce")
		return false
	}

	if !q.shouldForwardForBounceReduction(ev) {
		if q.metrics != nil {
			q.metrics.recordDeferred()
		}
		return false
	}

	q.forwardEvent(ev)
	return true
}

// shouldForwardForBounceReduction decides whether the event bypasses the
// deferral queue. Reports false when the event was deferred.
func (q *Queue) shouldForwardForBounceReduction(ev gesture.Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.debounceInterval <= 0 {
		return true
	}

	// Never debounce while a fling is active. A scroll-end here ends the
	// fling and must not be cancelled by its next scroll-begin.
	if q.fling.InProgress() {
		return true
	}

	switch ev.Type {
	case gesture.TypeScrollUpdate:
		if q.timer == nil {
			q.timer = q.sched.AfterFunc(q.debounceInterval, q.sendScrollEndingEventsNow)
		} else {
			// Extend the bounce interval rather than stacking timers.
			q.timer.Reset(q.debounceInterval)
		}
		q.scrolling = true
		q.deferred = nil
		return true

	case gesture.TypePinchBegin, gesture.TypePinchUpdate, gesture.TypePinchEnd:
		return true

	default:
		if q.scrolling {
			q.deferred = append(q.deferred, ev)
			return false
		}
		return true
	}
}

// sendScrollEndingEventsNow runs on debounce expiry: the scroll sequence
// is over, so the held events go out. Each one gets a final pass through
// the fling filter because a fling may have started while it sat in the
// deferral queue.
func (q *Queue) sendScrollEndingEventsNow() {
	q.mu.Lock()
	q.scrolling = false
	deferred := q.deferred
	q.deferred = nil
	q.mu.Unlock()

	if len(deferred) == 0 {
		return
	}
	if q.metrics != nil {
		q.metrics.recordFlushed(len(deferred))
	}
	for _, ev := range deferred {
		if q.fling.FilterGestureEvent(ev) {
			if q.metrics != nil {
				q.metrics.recordAbsorbed()
			}
			continue
		}
		q.forwardEvent(ev)
	}
}

// forwardEvent appends the event to the acknowledgment ledger and
// delivers it to the consumer. Scroll sequence boundaries drive the
// fling layer's frame scheduler subscription.
func (q *Queue) forwardEvent(ev gesture.Event) {
	if ev.Type.IsFling() {
		q.dropInvariantViolation(ev, "forward")
		return
	}

	q.mu.Lock()
	q.ledger.append(ev)
	q.mu.Unlock()

	switch ev.Type {
	case gesture.TypeScrollBegin:
		q.fling.RegisterSchedulerObserver()
	case gesture.TypeScrollEnd:
		q.fling.UnregisterSchedulerObserver()
	}

	if q.metrics != nil {
		q.metrics.recordForwarded(ev.Type)
	}
	q.client.SendEventImmediately(ev)
}

// AcknowledgeEvent records a consumer acknowledgment for the oldest
// pending event of the given type. Acknowledgments may arrive in any
// order; completion callbacks still fire in original dispatch order.
// Unknown or duplicate acknowledgments are logged no-ops.
func (q *Queue) AcknowledgeEvent(source AckSource, result AckResult, t gesture.Type, trace gesture.Trace) {
	q.mu.Lock()
	if q.ledger.empty() {
		q.mu.Unlock()
		if q.metrics != nil {
			q.metrics.recordUnexpectedAck()
		}
		q.logf("unexpected ack for %s: no events awaiting acknowledgment", t)
		return
	}
	matched := q.ledger.complete(t, source, result, trace)
	q.mu.Unlock()

	if !matched {
		if q.metrics != nil {
			q.metrics.recordUnexpectedAck()
		}
		q.logf("unexpected ack for %s: no pending entry of that type", t)
	}

	q.drainCompletedAcks()
}

// drainCompletedAcks pops completed entries off the ledger head and
// invokes the client callback for each, stopping at the first entry
// still awaiting its acknowledgment.
//
// The drain is non-reentrant: if an OnEventAck callback synchronously
// feeds another acknowledgment in, the nested call marks its entry and
// returns, and this loop observes it on its next iteration.
func (q *Queue) drainCompletedAcks() {
	q.mu.Lock()
	if q.draining {
		q.mu.Unlock()
		return
	}
	q.draining = true

	for {
		head, ok := q.ledger.popCompletedHead()
		if !ok {
			break
		}
		q.mu.Unlock()

		if q.metrics != nil {
			q.metrics.recordAcked()
		}
		q.client.OnEventAck(head.event, head.source, head.result)

		q.mu.Lock()
	}

	q.draining = false
	q.mu.Unlock()
}

// TakeDeferredEvents returns and clears the deferral queue. The owner
// uses this to flush and re-filter externally, for example at shutdown
// or on a mode change.
func (q *Queue) TakeDeferredEvents() []gesture.Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	deferred := q.deferred
	q.deferred = nil
	return deferred
}

// StopFling terminates any active fling on the redirector.
func (q *Queue) StopFling() {
	q.fling.Stop()
}

// IsFlingCancellationDeferred reports whether the fling layer holds a
// cancellation it has not yet acted on.
func (q *Queue) IsFlingCancellationDeferred() bool {
	return q.fling.CancellationDeferred()
}

// CurrentFlingVelocity returns the active fling's velocity, or zero.
func (q *Queue) CurrentFlingVelocity() fling.Velocity {
	return q.fling.CurrentVelocity()
}

// ScrollingInProgress reports whether a scroll debounce window is open.
func (q *Queue) ScrollingInProgress() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.scrolling
}

// PendingAckCount returns the number of forwarded events still awaiting
// their ordered acknowledgment callback.
func (q *Queue) PendingAckCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ledger.len()
}

// DeferredCount returns the number of events held by the debounce window.
func (q *Queue) DeferredCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.deferred)
}

// Metrics returns the metrics collector, or nil if disabled.
func (q *Queue) Metrics() *Metrics {
	return q.metrics
}

// dropInvariantViolation handles a fling event reaching a stage the
// fling gate should have absorbed it before.
func (q *Queue) dropInvariantViolation(ev gesture.Event, stage string) {
	if q.config.StrictInvariants {
		panic("queue: " + ev.Type.String() + " event reached the " + stage + " stage")
	}
	if q.metrics != nil {
		q.metrics.recordInvariantDrop()
	}
	q.logf("dropping %s at %s stage: fling events belong to the redirector", ev.Type, stage)
}

// logf forwards a diagnostic message to the configured log hook.
func (q *Queue) logf(format string, args ...any) {
	if q.config.Logf != nil {
		q.config.Logf(format, args...)
	}
}
