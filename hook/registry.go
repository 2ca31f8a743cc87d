package hook

import (
	"context"
	"fmt"

	"github.com/pulsekit/jobpulse/event"
)

// Named entry types pair a hook implementation with the subscriber name
// captured at registration time. This avoids type-asserting back to
// Hook inside the emit methods.
type jobStartedEntry struct {
	name string
	hook JobStarted
}

type jobPerformedEntry struct {
	name string
	hook JobPerformed
}

// Registry holds registered subscribers and dispatches lifecycle events
// to them. It type-caches subscribers at registration time so emit
// calls iterate only over those that implement the relevant hook.
//
// Emit methods run subscribers synchronously in registration order and
// stop at the first error, returning it to the notification dispatch
// point. Metric recording is reliable infrastructure, not best-effort:
// a failing subscriber interrupts the surrounding notification chain.
type Registry struct {
	hooks []Hook

	// Type-cached slices for each lifecycle hook.
	jobStarted   []jobStartedEntry
	jobPerformed []jobPerformedEntry
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry { return &Registry{} }

// Register adds a subscriber and type-asserts it into all applicable
// hook caches. Subscribers are notified in registration order.
func (r *Registry) Register(h Hook) {
	r.hooks = append(r.hooks, h)
	name := h.Name()

	if s, ok := h.(JobStarted); ok {
		r.jobStarted = append(r.jobStarted, jobStartedEntry{name, s})
	}
	if p, ok := h.(JobPerformed); ok {
		r.jobPerformed = append(r.jobPerformed, jobPerformedEntry{name, p})
	}
}

// Hooks returns all registered subscribers.
func (r *Registry) Hooks() []Hook { return r.hooks }

// EmitJobStarted notifies all subscribers that implement JobStarted.
// Returns the first subscriber error, without notifying the rest.
func (r *Registry) EmitJobStarted(ctx context.Context, evt *event.JobEvent) error {
	for _, e := range r.jobStarted {
		if err := e.hook.OnJobStarted(ctx, evt); err != nil {
			return fmt.Errorf("hook %s: OnJobStarted: %w", e.name, err)
		}
	}
	return nil
}

// EmitJobPerformed notifies all subscribers that implement JobPerformed.
// Returns the first subscriber error, without notifying the rest.
func (r *Registry) EmitJobPerformed(ctx context.Context, evt *event.JobEvent) error {
	for _, e := range r.jobPerformed {
		if err := e.hook.OnJobPerformed(ctx, evt); err != nil {
			return fmt.Errorf("hook %s: OnJobPerformed: %w", e.name, err)
		}
	}
	return nil
}
