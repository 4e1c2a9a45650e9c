package domain

import "errors"

// Domain errors represent the fatal conditions of a run.
// They are wrapped with context and can be checked with errors.Is.
var (
	// ErrFileAccess is returned when the input file cannot be opened.
	ErrFileAccess = errors.New("efflux: file access")

	// ErrLineDecode is returned when a line cannot be read or is not valid UTF-8.
	ErrLineDecode = errors.New("efflux: line decode")

	// ErrTransport is returned when an HTTP request fails to complete.
	ErrTransport = errors.New("efflux: transport")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("efflux: invalid configuration")

	// ErrInvalidTransition is returned when the run state machine is driven
	// out of order.
	ErrInvalidTransition = errors.New("efflux: invalid state transition")
)
