package gesture

import (
	"testing"
	"time"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{TypeNone, "none"},
		{TypeScrollBegin, "scroll-begin"},
		{TypeScrollUpdate, "scroll-update"},
		{TypeScrollEnd, "scroll-end"},
		{TypePinchBegin, "pinch-begin"},
		{TypePinchUpdate, "pinch-update"},
		{TypePinchEnd, "pinch-end"},
		{TypeFlingStart, "fling-start"},
		{TypeFlingCancel, "fling-cancel"},
		{TypeOther, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("Type.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTypeClassification(t *testing.T) {
	scrolls := []Type{TypeScrollBegin, TypeScrollUpdate, TypeScrollEnd}
	pinches := []Type{TypePinchBegin, TypePinchUpdate, TypePinchEnd}
	flings := []Type{TypeFlingStart, TypeFlingCancel}

	for _, typ := range scrolls {
		if !typ.IsScroll() {
			t.Errorf("%s.IsScroll() = false, want true", typ)
		}
		if typ.IsPinch() || typ.IsFling() {
			t.Errorf("%s misclassified as pinch or fling", typ)
		}
	}

	for _, typ := range pinches {
		if !typ.IsPinch() {
			t.Errorf("%s.IsPinch() = false, want true", typ)
		}
	}

	for _, typ := range flings {
		if !typ.IsFling() {
			t.Errorf("%s.IsFling() = false, want true", typ)
		}
	}

	if TypeOther.IsScroll() || TypeOther.IsPinch() || TypeOther.IsFling() {
		t.Error("TypeOther should not classify as scroll, pinch, or fling")
	}
}

func TestNewEventHasTrace(t *testing.T) {
	ev := New(TypeScrollBegin)

	if ev.Type != TypeScrollBegin {
		t.Errorf("Type = %s, want %s", ev.Type, TypeScrollBegin)
	}
	if ev.Trace.ID == "" {
		t.Error("New event should carry a trace ID")
	}
	if ev.Timestamp.IsZero() {
		t.Error("New event should carry a timestamp")
	}
}

func TestNewAtUsesTimestamp(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	ev := NewAt(TypeOther, at)

	if !ev.Timestamp.Equal(at) {
		t.Errorf("Timestamp = %v, want %v", ev.Timestamp, at)
	}
}

func TestTraceAdd(t *testing.T) {
	tr := NewTrace()
	tr.Add("source")
	tr.Add("queue")

	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
	if tr.Marks[0].Component != "source" || tr.Marks[1].Component != "queue" {
		t.Errorf("marks out of order: %v", tr.Marks)
	}
}

func TestTraceMergeAppends(t *testing.T) {
	tr := NewTrace()
	tr.AddAt("source", time.Unix(1, 0))

	other := NewTrace()
	other.AddAt("consumer", time.Unix(2, 0))
	other.AddAt("compositor", time.Unix(3, 0))

	originalID := tr.ID
	tr.Merge(other)

	if tr.ID != originalID {
		t.Errorf("Merge changed trace ID from %q to %q", originalID, tr.ID)
	}
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	if tr.Marks[1].Component != "consumer" || tr.Marks[2].Component != "compositor" {
		t.Errorf("merged marks out of order: %v", tr.Marks)
	}
}

func TestTraceMergeAdoptsIDWhenEmpty(t *testing.T) {
	var tr Trace
	other := NewTrace()
	other.Add("consumer")

	tr.Merge(other)

	if tr.ID != other.ID {
		t.Errorf("empty trace should adopt merged ID, got %q want %q", tr.ID, other.ID)
	}
}

func TestTraceCloneIsIndependent(t *testing.T) {
	tr := NewTrace()
	tr.Add("source")

	clone := tr.Clone()
	clone.Add("queue")

	if tr.Len() != 1 {
		t.Errorf("clone mutation leaked into original: Len() = %d, want 1", tr.Len())
	}
	if clone.Len() != 2 {
		t.Errorf("clone Len() = %d, want 2", clone.Len())
	}
	if clone.ID != tr.ID {
		t.Errorf("clone ID = %q, want %q", clone.ID, tr.ID)
	}
}
