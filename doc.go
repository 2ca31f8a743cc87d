// Package jobpulse instruments background-job execution with lifecycle
// metrics. It subscribes to two job lifecycle events — "job started" and
// "job performed" — and records execution counts, success and failure
// counts, a runtime histogram, and an enqueue-to-start latency histogram
// into a pluggable metrics registry.
//
// jobpulse is an observability adapter, not a job framework. It owns no
// scheduling, no retries, no queues, and no metric storage: the hosting
// framework delivers events, an external registry keeps the series.
//
// # Quick Start
//
//	hooks := hook.NewRegistry()
//	listener, err := jobpulse.New()
//	if err != nil {
//	    ...
//	}
//	if err := listener.Install(prom.New(prometheus.DefaultRegisterer), hooks); err != nil {
//	    ...
//	}
//
// The host then either emits events directly through the hook registry
// or wraps its job handlers with middleware.Instrument, which produces
// both events around each execution.
//
// # Architecture
//
// Events are strongly typed (event.JobEvent), populated at the framework
// boundary by an adapter. The metrics registry is an injected interface
// (metrics.Registry) with Prometheus, OpenTelemetry, and in-memory
// implementations. Handlers run synchronously on the delivering
// goroutine and keep no state across events.
package jobpulse
