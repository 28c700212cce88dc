package queue

import "github.com/dshills/gestureflow/internal/gesture"

// entry pairs a forwarded event with its acknowledgment slot. The slot
// has exactly two states: unset (acked == false, source and result at
// their zero values) and completed. It is set at most once.
type entry struct {
	event  gesture.Event
	acked  bool
	source AckSource
	result AckResult
}

// ledger holds forwarded events in strict dispatch order until they are
// acknowledged and drained. Entries are appended at the tail and only
// ever removed from the head, and only once the head is completed.
type ledger struct {
	entries []entry
}

// append records a newly forwarded event with an unset slot.
func (l *ledger) append(ev gesture.Event) {
	l.entries = append(l.entries, entry{event: ev})
}

// empty reports whether the ledger holds no entries.
func (l *ledger) empty() bool {
	return len(l.entries) == 0
}

// len returns the number of entries awaiting drain.
func (l *ledger) len() int {
	return len(l.entries)
}

// complete sets the slot on the first unset entry of the given type,
// merging the acknowledgment's latency trace into the entry's event.
// The head-to-tail scan matches duplicate in-flight events of the same
// type to the earliest still-pending one. Returns false if no entry
// matched.
func (l *ledger) complete(t gesture.Type, source AckSource, result AckResult, trace gesture.Trace) bool {
	for i := range l.entries {
		e := &l.entries[i]
		if e.acked {
			continue
		}
		if e.event.Type != t {
			continue
		}
		e.event.Trace.Merge(trace)
		e.acked = true
		e.source = source
		e.result = result
		return true
	}
	return false
}

// popCompletedHead removes and returns the head entry if it is
// completed. Returns false if the ledger is empty or the head is still
// awaiting its acknowledgment.
func (l *ledger) popCompletedHead() (entry, bool) {
	if len(l.entries) == 0 || !l.entries[0].acked {
		return entry{}, false
	}
	head := l.entries[0]
	l.entries = l.entries[1:]
	return head, true
}

// contains reports whether any entry holds an event of the given type.
func (l *ledger) contains(t gesture.Type) bool {
	for i := range l.entries {
		if l.entries[i].event.Type == t {
			return true
		}
	}
	return false
}
