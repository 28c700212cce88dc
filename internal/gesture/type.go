package gesture

// Type classifies a gesture event. The set is closed; dispatch decisions
// use exhaustive switches over it rather than interface dispatch.
type Type uint8

const (
	// TypeNone indicates an uninitialized event.
	TypeNone Type = iota
	// TypeScrollBegin opens a scroll sequence.
	TypeScrollBegin
	// TypeScrollUpdate continues an active scroll sequence.
	TypeScrollUpdate
	// TypeScrollEnd closes a scroll sequence.
	TypeScrollEnd
	// TypePinchBegin opens a pinch-zoom sequence.
	TypePinchBegin
	// TypePinchUpdate continues an active pinch-zoom sequence.
	TypePinchUpdate
	// TypePinchEnd closes a pinch-zoom sequence.
	TypePinchEnd
	// TypeFlingStart hands post-release momentum to the fling layer.
	TypeFlingStart
	// TypeFlingCancel interrupts an active fling.
	TypeFlingCancel
	// TypeOther covers events the pipeline forwards without special policy
	// (taps, long presses, and anything else the source produces).
	TypeOther
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeScrollBegin:
		return "scroll-begin"
	case TypeScrollUpdate:
		return "scroll-update"
	case TypeScrollEnd:
		return "scroll-end"
	case TypePinchBegin:
		return "pinch-begin"
	case TypePinchUpdate:
		return "pinch-update"
	case TypePinchEnd:
		return "pinch-end"
	case TypeFlingStart:
		return "fling-start"
	case TypeFlingCancel:
		return "fling-cancel"
	case TypeOther:
		return "other"
	default:
		return "none"
	}
}

// IsScroll returns true for scroll sequence events.
func (t Type) IsScroll() bool {
	return t == TypeScrollBegin || t == TypeScrollUpdate || t == TypeScrollEnd
}

// IsPinch returns true for pinch sequence events.
func (t Type) IsPinch() bool {
	return t == TypePinchBegin || t == TypePinchUpdate || t == TypePinchEnd
}

// IsFling returns true for events owned by the fling layer.
func (t Type) IsFling() bool {
	return t == TypeFlingStart || t == TypeFlingCancel
}
