package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative debounce", func(c *Config) { c.Input.DebounceIntervalMS = -1 }},
		{"zero scroll quiet", func(c *Config) { c.Source.ScrollEndQuietMS = 0 }},
		{"negative fling threshold", func(c *Config) { c.Source.FlingVelocityThreshold = -0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Errorf("Validate() = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Input.DebounceInterval(); got != 3*time.Millisecond {
		t.Errorf("DebounceInterval() = %v, want 3ms", got)
	}
	if got := cfg.Source.ScrollEndQuiet(); got != 150*time.Millisecond {
		t.Errorf("ScrollEndQuiet() = %v, want 150ms", got)
	}
}
