package queue

import "time"

// DefaultDebounceInterval is the default scroll debounce window.
const DefaultDebounceInterval = 3 * time.Millisecond

// Config controls dispatch queue behavior.
type Config struct {
	// DebounceInterval is the scroll debounce window. Zero or negative
	// disables debouncing entirely; every event forwards immediately.
	DebounceInterval time.Duration

	// StrictInvariants panics on programmer errors, such as a fling event
	// reaching the forward stage. When false those events are dropped and
	// counted instead.
	StrictInvariants bool

	// EnableMetrics enables counter collection.
	EnableMetrics bool

	// Logf, when set, receives diagnostic messages such as unexpected
	// acknowledgments. Nil disables diagnostics.
	Logf func(format string, args ...any)

	// Scheduler overrides the debounce timer source. Nil uses the system
	// clock.
	Scheduler Scheduler
}

// DefaultConfig returns the default queue configuration.
func DefaultConfig() Config {
	return Config{
		DebounceInterval: DefaultDebounceInterval,
	}
}
