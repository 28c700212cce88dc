package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrInitialization indicates an initialization failure.
	ErrInitialization = errors.New("initialization failed")
)
