package config

import (
	"fmt"
	"time"
)

// Config is the root configuration.
type Config struct {
	Input  InputConfig  `toml:"input"`
	Source SourceConfig `toml:"source"`
	Script ScriptConfig `toml:"script"`
}

// InputConfig controls the dispatch queue.
type InputConfig struct {
	// DebounceIntervalMS is the scroll-end debounce window in
	// milliseconds. Zero disables debouncing.
	DebounceIntervalMS int `toml:"debounce_interval_ms"`

	// StrictInvariants makes internal invariant violations panic
	// instead of dropping the offending event.
	StrictInvariants bool `toml:"strict_invariants"`

	// EnableMetrics turns on queue counters.
	EnableMetrics bool `toml:"enable_metrics"`
}

// SourceConfig controls the terminal input translator.
type SourceConfig struct {
	// ScrollEndQuietMS is how long wheel input must be quiet, in
	// milliseconds, before a scroll sequence is considered over.
	ScrollEndQuietMS int `toml:"scroll_end_quiet_ms"`

	// SynthesizeFlings emits a fling-start when a scroll sequence ends
	// above the velocity threshold.
	SynthesizeFlings bool `toml:"synthesize_flings"`

	// FlingVelocityThreshold is the minimum scroll velocity, in rows
	// per second, for a synthesized fling.
	FlingVelocityThreshold float64 `toml:"fling_velocity_threshold"`
}

// ScriptConfig controls the optional Lua event filter.
type ScriptConfig struct {
	// FilterPath is the path to a Lua filter script. Empty disables
	// script filtering.
	FilterPath string `toml:"filter_path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			DebounceIntervalMS: 3,
			EnableMetrics:      true,
		},
		Source: SourceConfig{
			ScrollEndQuietMS:       150,
			SynthesizeFlings:       true,
			FlingVelocityThreshold: 20,
		},
	}
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Input.DebounceIntervalMS < 0 {
		return fmt.Errorf("%w: input.debounce_interval_ms must not be negative, got %d",
			ErrValidationFailed, c.Input.DebounceIntervalMS)
	}
	if c.Source.ScrollEndQuietMS <= 0 {
		return fmt.Errorf("%w: source.scroll_end_quiet_ms must be positive, got %d",
			ErrValidationFailed, c.Source.ScrollEndQuietMS)
	}
	if c.Source.FlingVelocityThreshold < 0 {
		return fmt.Errorf("%w: source.fling_velocity_threshold must not be negative, got %g",
			ErrValidationFailed, c.Source.FlingVelocityThreshold)
	}
	return nil
}

// DebounceInterval returns the debounce window as a duration.
func (c InputConfig) DebounceInterval() time.Duration {
	return time.Duration(c.DebounceIntervalMS) * time.Millisecond
}

// ScrollEndQuiet returns the quiescence window as a duration.
func (c SourceConfig) ScrollEndQuiet() time.Duration {
	return time.Duration(c.ScrollEndQuietMS) * time.Millisecond
}
