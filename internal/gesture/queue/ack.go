package queue

// AckSource identifies which consumer stage acknowledged an event.
type AckSource uint8

const (
	// AckSourceUnknown indicates the acknowledgment slot is unset.
	AckSourceUnknown AckSource = iota
	// AckSourceCompositor indicates the consumer's compositor handled the event.
	AckSourceCompositor
	// AckSourceMain indicates the consumer's main thread handled the event.
	AckSourceMain
	// AckSourceLocal indicates the event was acknowledged locally without
	// reaching the consumer.
	AckSourceLocal
)

// String returns the source name.
func (s AckSource) String() string {
	switch s {
	case AckSourceCompositor:
		return "compositor"
	case AckSourceMain:
		return "main"
	case AckSourceLocal:
		return "local"
	default:
		return "unknown"
	}
}

// AckResult describes what the consumer did with an event.
type AckResult uint8

const (
	// AckResultUnknown indicates the acknowledgment slot is unset.
	AckResultUnknown AckResult = iota
	// AckResultConsumed indicates the consumer handled the event.
	AckResultConsumed
	// AckResultNotConsumed indicates the consumer declined the event.
	AckResultNotConsumed
	// AckResultNoConsumer indicates no consumer existed for the event.
	AckResultNoConsumer
	// AckResultIgnored indicates the event was dropped without processing.
	AckResultIgnored
)

// String returns the result name.
func (r AckResult) String() string {
	switch r {
	case AckResultConsumed:
		return "consumed"
	case AckResultNotConsumed:
		return "not-consumed"
	case AckResultNoConsumer:
		return "no-consumer"
	case AckResultIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}
