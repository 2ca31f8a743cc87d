// Package otelmetric implements the jobpulse metrics registry on the
// OpenTelemetry metrics API.
package otelmetric

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/pulsekit/jobpulse/metrics"
)

// meterName is the instrumentation scope name for jobpulse metrics.
const meterName = "github.com/pulsekit/jobpulse"

// Compile-time interface check.
var _ metrics.Registry = (*Registry)(nil)

// Registry declares jobpulse metric families as OTel instruments using
// the global MeterProvider. If no MeterProvider is configured, noop
// instruments are used and recording becomes a pass-through.
type Registry struct {
	meter metric.Meter
}

// New creates a registry on the global MeterProvider.
func New() *Registry {
	return &Registry{meter: otel.Meter(meterName)}
}

// NewWithMeter creates a registry using the provided meter. This
// variant allows injecting a specific MeterProvider for testing.
func NewWithMeter(meter metric.Meter) *Registry {
	return &Registry{meter: meter}
}

// RegisterCounter implements metrics.Registry. Label names are not
// fixed at registration; OTel carries them per-measurement as
// attributes.
func (r *Registry) RegisterCounter(opts metrics.CounterOpts) (metrics.Counter, error) {
	c, err := r.meter.Int64Counter(opts.Name,
		metric.WithDescription(opts.Help),
	)
	if err != nil {
		return nil, err
	}
	return &counter{inner: c}, nil
}

// RegisterHistogram implements metrics.Registry. Bucket bounds are set
// per-instrument with explicit bucket boundaries.
func (r *Registry) RegisterHistogram(opts metrics.HistogramOpts) (metrics.Histogram, error) {
	h, err := r.meter.Float64Histogram(opts.Name,
		metric.WithDescription(opts.Help),
		metric.WithUnit(ucum(opts.Unit)),
		metric.WithExplicitBucketBoundaries(opts.Buckets...),
	)
	if err != nil {
		return nil, err
	}
	return &histogram{inner: h}, nil
}

// ucum maps spelled-out unit names to the UCUM codes OTel expects.
func ucum(unit string) string {
	switch unit {
	case "seconds":
		return "s"
	case "milliseconds":
		return "ms"
	default:
		return unit
	}
}

type counter struct {
	inner metric.Int64Counter
}

func (c *counter) Inc(labels map[string]string) error {
	c.inner.Add(context.Background(), 1, attrs(labels))
	return nil
}

type histogram struct {
	inner metric.Float64Histogram
}

func (h *histogram) Observe(labels map[string]string, value float64) error {
	h.inner.Record(context.Background(), value, attrs(labels))
	return nil
}

func attrs(labels map[string]string) metric.MeasurementOption {
	kvs := make([]attribute.KeyValue, 0, len(labels))
	for k, v := range labels {
		kvs = append(kvs, attribute.String(k, v))
	}
	return metric.WithAttributes(kvs...)
}
