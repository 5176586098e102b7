package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector is what the smoke-test runner records into.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// ObserveStep records the duration of a step and counts failures.
	ObserveStep(step string, start time.Time, err error)

	// RecordRun counts a finished run by result.
	RecordRun(collection string, err error)

	// SetTopScore stores the best search score of the run.
	SetTopScore(collection string, score float64)

	// Push sends the collected metrics to the Pushgateway, if configured.
	Push(ctx context.Context) error

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}

var _ MetricsCollector = (*Metrics)(nil)
