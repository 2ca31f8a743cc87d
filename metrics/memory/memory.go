// Package memory implements the jobpulse metrics registry with
// map-backed series, for tests and examples. It enforces the same
// label-name discipline a Prometheus backend would: observations with
// label names that differ from the registered set are rejected.
package memory

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/pulsekit/jobpulse/metrics"
)

// Compile-time interface check.
var _ metrics.Registry = (*Registry)(nil)

// Registry keeps all declared families and their series in memory.
type Registry struct {
	mu         sync.Mutex
	counters   map[string]*Counter
	histograms map[string]*Histogram
}

// NewRegistry creates an empty in-memory registry.
func NewRegistry() *Registry {
	return &Registry{
		counters:   make(map[string]*Counter),
		histograms: make(map[string]*Histogram),
	}
}

// RegisterCounter implements metrics.Registry.
func (r *Registry) RegisterCounter(opts metrics.CounterOpts) (metrics.Counter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.counters[opts.Name]; ok {
		return nil, fmt.Errorf("memory: counter %q already registered", opts.Name)
	}
	if _, ok := r.histograms[opts.Name]; ok {
		return nil, fmt.Errorf("memory: %q already registered as a histogram", opts.Name)
	}

	c := &Counter{
		labelNames: slices.Clone(opts.LabelNames),
		series:     make(map[string]float64),
	}
	r.counters[opts.Name] = c
	return c, nil
}

// RegisterHistogram implements metrics.Registry.
func (r *Registry) RegisterHistogram(opts metrics.HistogramOpts) (metrics.Histogram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.histograms[opts.Name]; ok {
		return nil, fmt.Errorf("memory: histogram %q already registered", opts.Name)
	}
	if _, ok := r.counters[opts.Name]; ok {
		return nil, fmt.Errorf("memory: %q already registered as a counter", opts.Name)
	}

	h := &Histogram{
		labelNames: slices.Clone(opts.LabelNames),
		buckets:    slices.Clone(opts.Buckets),
		series:     make(map[string][]float64),
	}
	r.histograms[opts.Name] = h
	return h, nil
}

// Counter returns the counter registered under name, or nil.
func (r *Registry) Counter(name string) *Counter {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[name]
}

// Histogram returns the histogram registered under name, or nil.
func (r *Registry) Histogram(name string) *Histogram {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.histograms[name]
}

// Counter is an in-memory counter family keyed by label set.
type Counter struct {
	mu         sync.Mutex
	labelNames []string
	series     map[string]float64
}

// Inc implements metrics.Counter.
func (c *Counter) Inc(labels map[string]string) error {
	key, err := seriesKey(c.labelNames, labels)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.series[key]++
	return nil
}

// Value returns the current count for the given label set.
func (c *Counter) Value(labels map[string]string) float64 {
	key, err := seriesKey(c.labelNames, labels)
	if err != nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.series[key]
}

// Total returns the sum across all series of the family.
func (c *Counter) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, v := range c.series {
		total += v
	}
	return total
}

// Histogram is an in-memory histogram family keyed by label set. Raw
// observations are retained so tests can assert exact values.
type Histogram struct {
	mu         sync.Mutex
	labelNames []string
	buckets    []float64
	series     map[string][]float64
}

// Observe implements metrics.Histogram.
func (h *Histogram) Observe(labels map[string]string, value float64) error {
	key, err := seriesKey(h.labelNames, labels)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.series[key] = append(h.series[key], value)
	return nil
}

// Observations returns the recorded values for the given label set.
func (h *Histogram) Observations(labels map[string]string) []float64 {
	key, err := seriesKey(h.labelNames, labels)
	if err != nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.series[key])
}

// Count returns the total number of observations across all series.
func (h *Histogram) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	var n int
	for _, obs := range h.series {
		n += len(obs)
	}
	return n
}

// Buckets returns the bucket bounds the family was declared with.
func (h *Histogram) Buckets() []float64 {
	return slices.Clone(h.buckets)
}

// seriesKey encodes a label set as a deterministic string after
// checking it provides exactly the registered label names.
func seriesKey(names []string, labels map[string]string) (string, error) {
	if len(labels) != len(names) {
		return "", fmt.Errorf("memory: got %d labels, want %d (%v)", len(labels), len(names), names)
	}
	pairs := make([]string, 0, len(names))
	for _, name := range names {
		v, ok := labels[name]
		if !ok {
			return "", fmt.Errorf("memory: missing label %q", name)
		}
		pairs = append(pairs, name+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ","), nil
}
