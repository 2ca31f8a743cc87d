package middleware

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"

	"github.com/pulsekit/jobpulse/event"
	"github.com/pulsekit/jobpulse/hook"
	"github.com/pulsekit/jobpulse/id"
)

// InstrumentOption configures the Instrument middleware.
type InstrumentOption func(*instrumentConfig)

type instrumentConfig struct {
	clock clockwork.Clock
}

// WithClock sets the clock used to timestamp events and measure
// execution duration. Defaults to the wall clock; inject a fake clock
// in tests.
func WithClock(clock clockwork.Clock) InstrumentOption {
	return func(cfg *instrumentConfig) {
		cfg.clock = clock
	}
}

// Instrument returns middleware that emits a perform_start event before
// the handler runs and a perform event after it returns, carrying the
// measured duration and, on error, a failure descriptor.
//
// Hook errors propagate: a failing start notification aborts the
// execution, and a failing perform notification surfaces after a
// successful handler run. A handler error always wins over a perform
// notification error.
func Instrument(hooks *hook.Registry, opts ...InstrumentOption) Middleware {
	cfg := instrumentConfig{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx context.Context, j *Job, next Handler) error {
		start := cfg.clock.Now()

		startEvt := &event.JobEvent{
			ID:         id.NewEventID(),
			Kind:       event.KindPerformStart,
			JobName:    j.Name,
			Queue:      j.Queue,
			Executions: j.Executions,
			EnqueuedAt: j.EnqueuedAt,
			EndedAt:    start,
		}
		if err := hooks.EmitJobStarted(ctx, startEvt); err != nil {
			return err
		}

		err := next(ctx)
		end := cfg.clock.Now()

		performEvt := &event.JobEvent{
			ID:         id.NewEventID(),
			Kind:       event.KindPerform,
			JobName:    j.Name,
			Queue:      j.Queue,
			Executions: j.Executions,
			EnqueuedAt: j.EnqueuedAt,
			EndedAt:    end,
			Duration:   end.Sub(start),
		}
		if err != nil {
			performEvt.Failure = failureDescriptor(err)
		}

		if emitErr := hooks.EmitJobPerformed(ctx, performEvt); emitErr != nil && err == nil {
			return emitErr
		}
		return err
	}
}

// failureDescriptor flattens err into the descriptor recorded on failed
// jobs. Joined errors contribute one element per constituent error;
// anything else is a single element.
func failureDescriptor(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		errs := joined.Unwrap()
		parts := make([]string, 0, len(errs))
		for _, e := range errs {
			parts = append(parts, e.Error())
		}
		return parts
	}
	return []string{err.Error()}
}
