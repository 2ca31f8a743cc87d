package otelmetric_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/pulsekit/jobpulse/metrics"
	"github.com/pulsekit/jobpulse/metrics/otelmetric"
)

func setupTestMeter() (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	return reader, mp
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestCounterInc(t *testing.T) {
	reader, mp := setupTestMeter()
	r := otelmetric.NewWithMeter(mp.Meter("test"))

	c, err := r.RegisterCounter(metrics.CounterOpts{
		Name:       "job_executed_total",
		Help:       "Total executed jobs.",
		LabelNames: []string{"queue"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Inc(map[string]string{"queue": "default"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rm := collectMetrics(t, reader)
	m := findMetric(rm, "job_executed_total")
	if m == nil {
		t.Fatal("job_executed_total metric not found")
	}

	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatal("expected Sum[int64] data type")
	}
	if len(sum.DataPoints) != 1 {
		t.Fatalf("expected 1 data point, got %d", len(sum.DataPoints))
	}
	if sum.DataPoints[0].Value != 1 {
		t.Errorf("expected value=1, got %d", sum.DataPoints[0].Value)
	}

	found := false
	for _, attr := range sum.DataPoints[0].Attributes.ToSlice() {
		if string(attr.Key) == "queue" && attr.Value.AsString() == "default" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected queue=default attribute on counter")
	}
}

func TestHistogramObserve(t *testing.T) {
	reader, mp := setupTestMeter()
	r := otelmetric.NewWithMeter(mp.Meter("test"))

	h, err := r.RegisterHistogram(metrics.HistogramOpts{
		Name:       "job_runtime",
		Help:       "Job runtime in seconds.",
		Unit:       "seconds",
		LabelNames: []string{"queue"},
		Buckets:    []float64{0.1, 1, 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := h.Observe(map[string]string{"queue": "default"}, 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rm := collectMetrics(t, reader)
	m := findMetric(rm, "job_runtime")
	if m == nil {
		t.Fatal("job_runtime metric not found")
	}
	if m.Unit != "s" {
		t.Errorf("unit = %q, want %q", m.Unit, "s")
	}

	hist, ok := m.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatal("expected Histogram[float64] data type")
	}
	if len(hist.DataPoints) != 1 {
		t.Fatalf("expected 1 data point, got %d", len(hist.DataPoints))
	}
	dp := hist.DataPoints[0]
	if dp.Count != 1 {
		t.Errorf("expected count=1, got %d", dp.Count)
	}
	if dp.Sum != 0.5 {
		t.Errorf("expected sum=0.5, got %v", dp.Sum)
	}
	if len(dp.Bounds) != 3 {
		t.Errorf("expected 3 bucket bounds, got %d", len(dp.Bounds))
	}
}

func TestDefaultNoopSafe(t *testing.T) {
	// Registering without a global provider should not panic, and
	// recording should be a pass-through.
	r := otelmetric.New()

	c, err := r.RegisterCounter(metrics.CounterOpts{Name: "noop_total", Help: "noop"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Inc(map[string]string{"queue": "default"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAttributesComplete(t *testing.T) {
	reader, mp := setupTestMeter()
	r := otelmetric.NewWithMeter(mp.Meter("test"))

	c, err := r.RegisterCounter(metrics.CounterOpts{
		Name: "job_failed_total",
		Help: "Total failed jobs.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	labels := map[string]string{
		"activejob":      "SendEmailJob",
		"queue":          "default",
		"executions":     "1",
		"failure_reason": "StandardError,boom",
	}
	if err := c.Inc(labels); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rm := collectMetrics(t, reader)
	m := findMetric(rm, "job_failed_total")
	if m == nil {
		t.Fatal("job_failed_total metric not found")
	}
	sum := m.Data.(metricdata.Sum[int64])

	attrMap := make(map[string]string)
	for _, attr := range sum.DataPoints[0].Attributes.ToSlice() {
		if attr.Value.Type() == attribute.STRING {
			attrMap[string(attr.Key)] = attr.Value.AsString()
		}
	}
	for key, want := range labels {
		got, ok := attrMap[key]
		if !ok {
			t.Errorf("missing attribute %q", key)
			continue
		}
		if got != want {
			t.Errorf("attribute %q = %q, want %q", key, got, want)
		}
	}
}
