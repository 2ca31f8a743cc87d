package jobpulse

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/pulsekit/jobpulse/event"
	"github.com/pulsekit/jobpulse/hook"
	"github.com/pulsekit/jobpulse/metrics"
)

// Metric names declared by the Listener.
const (
	MetricExecuted = "job_executed_total"
	MetricSuccess  = "job_success_total"
	MetricFailed   = "job_failed_total"
	MetricRuntime  = "job_runtime"
	MetricLatency  = "job_latency"
)

// Compile-time interface checks.
var (
	_ hook.Hook         = (*Listener)(nil)
	_ hook.JobStarted   = (*Listener)(nil)
	_ hook.JobPerformed = (*Listener)(nil)
)

// Listener consumes job lifecycle events and records them into a
// metrics registry. It keeps no state across events; each handler
// invocation reads its own event and writes to independently-labeled
// series, so concurrent invocations need no locking beyond what the
// registry guarantees.
//
// Create one with New and wire it with Install.
type Listener struct {
	logger   *slog.Logger
	defaults Labels

	executed metrics.Counter
	success  metrics.Counter
	failed   metrics.Counter
	runtime  metrics.Histogram
	latency  metrics.Histogram
}

// New creates a Listener with the given options.
func New(opts ...Option) (*Listener, error) {
	l := &Listener{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Name implements hook.Hook.
func (l *Listener) Name() string { return "jobpulse-listener" }

// Install declares the listener's three counters and two histograms
// with reg, then subscribes the listener to hooks. Call it once at
// process start; a second call registers duplicate metric names and
// fails with the registry's error.
func (l *Listener) Install(reg metrics.Registry, hooks *hook.Registry) error {
	if reg == nil {
		return ErrNoRegistry
	}
	if hooks == nil {
		return ErrNoHookRegistry
	}

	base := []string{LabelJob, LabelQueue, LabelExecutions}

	var err error
	l.executed, err = reg.RegisterCounter(metrics.CounterOpts{
		Name:       MetricExecuted,
		Help:       "The total number of executed jobs.",
		LabelNames: base,
	})
	if err != nil {
		return err
	}

	l.success, err = reg.RegisterCounter(metrics.CounterOpts{
		Name:       MetricSuccess,
		Help:       "The total number of successfully finished jobs.",
		LabelNames: base,
	})
	if err != nil {
		return err
	}

	l.failed, err = reg.RegisterCounter(metrics.CounterOpts{
		Name:       MetricFailed,
		Help:       "The total number of failed jobs.",
		LabelNames: append(slices.Clone(base), LabelFailure),
	})
	if err != nil {
		return err
	}

	l.runtime, err = reg.RegisterHistogram(metrics.HistogramOpts{
		Name:       MetricRuntime,
		Help:       "Job runtime in seconds.",
		Unit:       "seconds",
		LabelNames: base,
		Buckets:    JobBuckets,
	})
	if err != nil {
		return err
	}

	l.latency, err = reg.RegisterHistogram(metrics.HistogramOpts{
		Name:       MetricLatency,
		Help:       "Time between when a job is enqueued and when it starts executing, in seconds.",
		Unit:       "seconds",
		LabelNames: l.latencyLabelNames(base),
		Buckets:    JobBuckets,
	})
	if err != nil {
		return err
	}

	hooks.Register(l)
	l.logger.Debug("job lifecycle metrics installed",
		slog.String("listener", l.Name()),
		slog.Int("default_labels", len(l.defaults)),
	)
	return nil
}

// latencyLabelNames extends the base label names with the configured
// default label keys the events do not already provide, in sorted
// order so registration is deterministic.
func (l *Listener) latencyLabelNames(base []string) []string {
	extra := make([]string, 0, len(l.defaults))
	for k := range l.defaults {
		if !slices.Contains(base, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return append(slices.Clone(base), extra...)
}

// OnJobStarted handles a perform_start event: it records the time the
// job spent waiting between enqueue and execution start. An event
// without an enqueue timestamp fails with ErrNoEnqueueTime and records
// nothing.
func (l *Listener) OnJobStarted(_ context.Context, evt *event.JobEvent) error {
	if l.latency == nil {
		return ErrNotInstalled
	}
	if evt.EnqueuedAt.IsZero() {
		return ErrNoEnqueueTime
	}

	labels := baseLabels(evt).MergeDefaults(l.defaults)
	seconds := evt.EndedAt.UTC().Sub(evt.EnqueuedAt.UTC()).Seconds()
	return l.latency.Observe(labels, seconds)
}

// OnJobPerformed handles a perform event: one increment on
// executed and one on success or failed, plus one runtime observation.
// Registry failures return to the notification dispatch point
// unchanged; nothing is retried or suppressed.
func (l *Listener) OnJobPerformed(_ context.Context, evt *event.JobEvent) error {
	if l.executed == nil {
		return ErrNotInstalled
	}

	labels := baseLabels(evt)
	if evt.Failure != nil {
		if err := l.failed.Inc(labels.withFailure(evt.Failure)); err != nil {
			return err
		}
	} else {
		if err := l.success.Inc(labels); err != nil {
			return err
		}
	}
	if err := l.executed.Inc(labels); err != nil {
		return err
	}
	return l.runtime.Observe(labels, runtimeSeconds(evt.Duration))
}

// runtimeSeconds converts an execution duration to seconds rounded to
// three decimal places.
func runtimeSeconds(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)
	return math.Round(ms) / 1000
}
