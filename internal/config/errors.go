package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a configuration value is out of range.
	ErrValidationFailed = errors.New("config validation failed")

	// ErrWatcherClosed indicates an operation on a closed watcher.
	ErrWatcherClosed = errors.New("config watcher closed")
)

// ParseError reports a configuration file that failed to parse.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
