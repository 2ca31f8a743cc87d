// Package metrics defines the pluggable registry surface jobpulse
// records into. The listener declares its metric families through a
// Registry at install time and holds the returned handles; storage and
// exposition belong to the implementation. Implementations live in the
// prom, otelmetric, and memory subpackages.
package metrics

// CounterOpts describes a counter family to declare with a Registry.
type CounterOpts struct {
	// Name is the metric family name, e.g. "job_executed_total".
	Name string
	// Help is the human-readable description.
	Help string
	// LabelNames is the fixed set of label names every series in the
	// family carries.
	LabelNames []string
}

// HistogramOpts describes a histogram family to declare with a Registry.
type HistogramOpts struct {
	Name       string
	Help       string
	LabelNames []string

	// Unit is the unit of observed values, e.g. "seconds". Backends
	// that encode units elsewhere (Prometheus encodes them in the
	// metric name) may ignore it.
	Unit string
	// Buckets is the ascending list of upper bucket bounds.
	Buckets []float64
}

// Counter is a handle to a monotonically increasing metric family.
type Counter interface {
	// Inc increments the series identified by labels by one.
	Inc(labels map[string]string) error
}

// Histogram is a handle to a metric family recording value
// distributions into fixed buckets.
type Histogram interface {
	// Observe records value, in the family's unit, on the series
	// identified by labels.
	Observe(labels map[string]string, value float64) error
}

// Registry declares metric families and hands back handles. Declaring
// a name twice is an error; jobpulse never retries or suppresses
// registry failures.
type Registry interface {
	RegisterCounter(opts CounterOpts) (Counter, error)
	RegisterHistogram(opts HistogramOpts) (Histogram, error)
}
