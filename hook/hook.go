// Package hook defines the lifecycle notification surface jobpulse
// consumes. Job frameworks (or the middleware package) emit events
// through a Registry; subscribers implement the hook interfaces for
// the events they care about.
//
// Each lifecycle hook is a separate interface so subscribers opt in
// only to the events they handle.
package hook

import (
	"context"

	"github.com/pulsekit/jobpulse/event"
)

// Hook is the base interface all subscribers must implement.
type Hook interface {
	// Name returns a unique human-readable name for the subscriber.
	Name() string
}

// JobStarted is called when a worker begins executing a job.
type JobStarted interface {
	OnJobStarted(ctx context.Context, evt *event.JobEvent) error
}

// JobPerformed is called after a job's perform call finishes, whether
// it succeeded or failed.
type JobPerformed interface {
	OnJobPerformed(ctx context.Context, evt *event.JobEvent) error
}
