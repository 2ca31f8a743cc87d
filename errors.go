package jobpulse

import "errors"

var (
	// Wiring errors.
	ErrNoRegistry     = errors.New("jobpulse: no metrics registry provided")
	ErrNoHookRegistry = errors.New("jobpulse: no hook registry provided")
	ErrNotInstalled   = errors.New("jobpulse: listener not installed")

	// Event errors.
	ErrNoEnqueueTime = errors.New("jobpulse: start event has no enqueue timestamp")
)
