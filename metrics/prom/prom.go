// Package prom implements the jobpulse metrics registry on top of
// prometheus/client_golang.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pulsekit/jobpulse/metrics"
)

// Compile-time interface check.
var _ metrics.Registry = (*Registry)(nil)

// Registry declares jobpulse metric families with a Prometheus
// registerer. Registering a duplicate name fails with
// prometheus.AlreadyRegisteredError.
type Registry struct {
	reg prometheus.Registerer
}

// New creates a registry backed by reg. Pass
// prometheus.DefaultRegisterer to use the process-wide default.
func New(reg prometheus.Registerer) *Registry {
	return &Registry{reg: reg}
}

// RegisterCounter implements metrics.Registry.
func (r *Registry) RegisterCounter(opts metrics.CounterOpts) (metrics.Counter, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: opts.Name,
		Help: opts.Help,
	}, opts.LabelNames)
	if err := r.reg.Register(vec); err != nil {
		return nil, err
	}
	return &counter{vec: vec}, nil
}

// RegisterHistogram implements metrics.Registry. The unit is not
// encoded separately; Prometheus convention carries it in the metric
// name and help text.
func (r *Registry) RegisterHistogram(opts metrics.HistogramOpts) (metrics.Histogram, error) {
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    opts.Name,
		Help:    opts.Help,
		Buckets: opts.Buckets,
	}, opts.LabelNames)
	if err := r.reg.Register(vec); err != nil {
		return nil, err
	}
	return &histogram{vec: vec}, nil
}

type counter struct {
	vec *prometheus.CounterVec
}

func (c *counter) Inc(labels map[string]string) error {
	m, err := c.vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return err
	}
	m.Inc()
	return nil
}

type histogram struct {
	vec *prometheus.HistogramVec
}

func (h *histogram) Observe(labels map[string]string, value float64) error {
	m, err := h.vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return err
	}
	m.Observe(value)
	return nil
}
