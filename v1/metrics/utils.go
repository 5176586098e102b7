package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ObserveStep records how long a step took and counts it as failed when err
// is non-nil.
func (m *Metrics) ObserveStep(step string, start time.Time, err error) {
	m.stepDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
	if err != nil {
		m.stepFailures.WithLabelValues(step).Inc()
	}
}

// RecordRun counts a finished run and, on success, stamps the last-success gauge.
func (m *Metrics) RecordRun(collection string, err error) {
	if err != nil {
		m.runsTotal.WithLabelValues(ResultFailure).Inc()
		return
	}
	m.runsTotal.WithLabelValues(ResultSuccess).Inc()
	m.lastSuccess.WithLabelValues(collection).SetToCurrentTime()
}

// SetTopScore stores the score of the best hit of the last search.
func (m *Metrics) SetTopScore(collection string, score float64) {
	m.topScore.WithLabelValues(collection).Set(score)
}

// PushEnabled reports whether a Pushgateway is configured.
func (m *Metrics) PushEnabled() bool {
	return m.cfg.PushgatewayURL != ""
}

// Push sends the whole registry to the configured Pushgateway, replacing
// the previous push of the same job. It is a no-op when no gateway is set.
func (m *Metrics) Push(ctx context.Context) error {
	if !m.PushEnabled() {
		return nil
	}

	err := push.New(m.cfg.PushgatewayURL, m.cfg.Job).
		Gatherer(m.Registry).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", m.cfg.PushgatewayURL, err)
	}
	return nil
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	c := createCounterVec(m.fqName(name), help, labels)
	m.registerer.MustRegister(c)
	return c
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	h := createHistogramVec(m.fqName(name), help, labels, buckets)
	m.registerer.MustRegister(h)
	return h
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	g := createGaugeVec(m.fqName(name), help, labels)
	m.registerer.MustRegister(g)
	return g
}

func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
