package queue

import (
	"sync"
	"time"

	"github.com/dshills/gestureflow/internal/gesture"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	// Per-type forwarding counts
	forwardedByType map[gesture.Type]uint64

	// Global counters
	forwarded      uint64
	deferred       uint64
	absorbed       uint64
	flushed        uint64
	acked          uint64
	unexpectedAcks uint64
	invariantDrops uint64
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		forwardedByType: make(map[gesture.Type]uint64),
	}
}

// recordForwarded counts an event delivered to the consumer.
func (m *Metrics) recordForwarded(t gesture.Type) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forwarded++
	m.forwardedByType[t]++
}

// recordDeferred counts an event held by the debounce window.
func (m *Metrics) recordDeferred() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deferred++
}

// recordAbsorbed counts an event claimed by the fling layer.
func (m *Metrics) recordAbsorbed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.absorbed++
}

// recordFlushed counts deferred events released by a debounce expiry.
func (m *Metrics) recordFlushed(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushed += uint64(n)
}

// recordAcked counts an ordered acknowledgment delivered to the client.
func (m *Metrics) recordAcked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acked++
}

// recordUnexpectedAck counts an acknowledgment with no matching entry.
func (m *Metrics) recordUnexpectedAck() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unexpectedAcks++
}

// recordInvariantDrop counts a defensively dropped fling event.
func (m *Metrics) recordInvariantDrop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invariantDrops++
}

// Forwarded returns the total number of events forwarded to the consumer.
func (m *Metrics) Forwarded() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.forwarded
}

// ForwardedByType returns the forwarding count for a specific type.
func (m *Metrics) ForwardedByType(t gesture.Type) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.forwardedByType[t]
}

// Deferred returns the total number of events held by debouncing.
func (m *Metrics) Deferred() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.deferred
}

// Absorbed returns the total number of events claimed by the fling layer.
func (m *Metrics) Absorbed() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.absorbed
}

// Flushed returns the total number of deferred events later forwarded.
func (m *Metrics) Flushed() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flushed
}

// Acked returns the total number of ordered acknowledgments delivered.
func (m *Metrics) Acked() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.acked
}

// UnexpectedAcks returns the count of acknowledgments with no match.
func (m *Metrics) UnexpectedAcks() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.unexpectedAcks
}

// InvariantDrops returns the count of defensively dropped fling events.
func (m *Metrics) InvariantDrops() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.invariantDrops
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.forwardedByType = make(map[gesture.Type]uint64)
	m.forwarded = 0
	m.deferred = 0
	m.absorbed = 0
	m.flushed = 0
	m.acked = 0
	m.unexpectedAcks = 0
	m.invariantDrops = 0
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Forwarded      uint64
	Deferred       uint64
	Absorbed       uint64
	Flushed        uint64
	Acked          uint64
	UnexpectedAcks uint64
	InvariantDrops uint64
	Timestamp      time.Time
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Forwarded:      m.forwarded,
		Deferred:       m.deferred,
		Absorbed:       m.absorbed,
		Flushed:        m.flushed,
		Acked:          m.acked,
		UnexpectedAcks: m.unexpectedAcks,
		InvariantDrops: m.invariantDrops,
		Timestamp:      time.Now(),
	}
}
