package middleware

import (
	"context"
	"time"
)

// Job describes the unit of work being wrapped. The host framework
// fills it from its own job representation before invoking the chain;
// jobpulse never creates or schedules jobs itself.
type Job struct {
	// Name is the job's class or type name.
	Name string
	// Queue is the named lane the job was dispatched through.
	Queue string
	// Executions counts attempts including the current one.
	Executions int
	// EnqueuedAt is when the job entered its queue. Instrument
	// requires it for the latency series; leaving it zero makes the
	// start notification fail.
	EnqueuedAt time.Time
}

// Handler is the terminal function that executes job logic.
type Handler func(ctx context.Context) error

// Middleware wraps a Handler with cross-cutting logic.
// It receives the current context, the job being executed, and the
// next handler to call. Middleware MUST call next to continue the chain
// (unless short-circuiting on error).
type Middleware func(ctx context.Context, j *Job, next Handler) error

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover, instrument) executes as:
//
//	logging → recover → instrument → handler
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, j *Job, next Handler) error {
		// Build the chain from the end backwards.
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) error {
				return mw(ctx, j, prev)
			}
		}
		return h(ctx)
	}
}
