// Package event defines the typed job lifecycle events jobpulse
// consumes, plus the boundary adapter that builds them from the
// loosely-typed payloads job frameworks emit.
package event

import (
	"time"

	"github.com/pulsekit/jobpulse/id"
)

// Kind identifies a lifecycle event type.
type Kind string

const (
	// KindPerformStart is emitted when a worker begins executing a job.
	KindPerformStart Kind = "perform_start"
	// KindPerform is emitted when a job's perform call finishes,
	// whether it succeeded or failed.
	KindPerform Kind = "perform"
)

// JobEvent represents one job lifecycle occurrence. Events are
// transient per-occurrence values; nothing retains them after the
// subscribed hooks return.
type JobEvent struct {
	ID   id.EventID `json:"id"`
	Kind Kind       `json:"kind"`

	// JobName is the job's class or type name.
	JobName string `json:"job_name"`
	// Queue is the named lane the job was dispatched through.
	Queue string `json:"queue"`
	// Executions counts attempts including the current one.
	Executions int `json:"executions"`

	// EnqueuedAt is when the job entered its queue. Zero when the job
	// carries no enqueue timestamp.
	EnqueuedAt time.Time `json:"enqueued_at,omitzero"`
	// EndedAt is the instant the measured span of this event finished.
	EndedAt time.Time `json:"ended_at"`

	// Duration is the elapsed wall time of the job's perform call.
	// Set on KindPerform only.
	Duration time.Duration `json:"duration,omitempty"`

	// Failure describes the error a failed job raised, typically the
	// error texts of the propagated chain. Nil on success.
	Failure []string `json:"failure,omitempty"`
}

// Failed reports whether the event carries a failure descriptor.
func (e *JobEvent) Failed() bool { return e.Failure != nil }
