package gesture

import (
	"time"

	"github.com/google/uuid"
)

// Mark records one component's handling of an event.
type Mark struct {
	// Component names the pipeline stage that recorded the mark.
	Component string

	// Time is when the component handled the event.
	Time time.Time
}

// Trace is the append-only latency history of an event. Marks are only
// ever added, never removed or reordered, so a trace read at any point
// reflects the full path the event has taken so far.
type Trace struct {
	// ID uniquely identifies the trace across merges.
	ID string

	// Marks are the recorded component markers, in append order.
	Marks []Mark
}

// NewTrace creates an empty trace with a unique ID.
func NewTrace() Trace {
	return Trace{ID: uuid.NewString()}
}

// Add appends a marker for the given component at the current time.
func (t *Trace) Add(component string) {
	t.AddAt(component, time.Now())
}

// AddAt appends a marker with an explicit timestamp.
func (t *Trace) AddAt(component string, at time.Time) {
	t.Marks = append(t.Marks, Mark{Component: component, Time: at})
}

// Merge appends all marks from another trace. The receiver keeps its own
// ID unless it has none, in which case it adopts the other trace's ID.
// Used when an acknowledgment carries latency data accumulated by the
// consumer back into the pipeline's copy of the event.
func (t *Trace) Merge(other Trace) {
	if t.ID == "" {
		t.ID = other.ID
	}
	t.Marks = append(t.Marks, other.Marks...)
}

// Clone returns a deep copy of the trace.
func (t Trace) Clone() Trace {
	marks := make([]Mark, len(t.Marks))
	copy(marks, t.Marks)
	return Trace{ID: t.ID, Marks: marks}
}

// Len returns the number of recorded marks.
func (t Trace) Len() int {
	return len(t.Marks)
}
