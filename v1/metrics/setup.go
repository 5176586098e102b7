package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// stepBuckets cover a local Qdrant (a few ms) up to a slow remote cluster.
var stepBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Metrics holds the Prometheus registry and the smoke-test collectors.
type Metrics struct {
	Registry *prometheus.Registry

	registerer prometheus.Registerer
	namespace  string
	cfg        Config

	stepDuration *prometheus.HistogramVec
	stepFailures *prometheus.CounterVec
	runsTotal    *prometheus.CounterVec
	lastSuccess  *prometheus.GaugeVec
	topScore     *prometheus.GaugeVec
}

// NewMetrics creates a registry, labels it with the service name and
// registers the smoke-test collectors on it.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	if cfg.Job == "" {
		cfg.Job = DefaultJob
	}

	m := &Metrics{
		Registry:   registry,
		registerer: wrappedRegistry,
		namespace:  cfg.Namespace,
		cfg:        cfg,
	}

	m.stepDuration = createHistogramVec(m.fqName("smoketest_step_duration_seconds"), "Duration of each smoke-test step in seconds", []string{"step"}, stepBuckets)
	m.stepFailures = createCounterVec(m.fqName("smoketest_step_failures_total"), "Number of failed smoke-test steps", []string{"step"})
	m.runsTotal = createCounterVec(m.fqName("smoketest_runs_total"), "Number of smoke-test runs by result", []string{"result"})
	m.lastSuccess = createGaugeVec(m.fqName("smoketest_last_success_timestamp_seconds"), "Unix time of the last successful run", []string{"collection"})
	m.topScore = createGaugeVec(m.fqName("smoketest_top_score"), "Similarity score of the best search hit", []string{"collection"})

	wrappedRegistry.MustRegister(
		m.stepDuration,
		m.stepFailures,
		m.runsTotal,
		m.lastSuccess,
		m.topScore,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	return m
}

func (m *Metrics) fqName(name string) string {
	return prometheus.BuildFQName(m.namespace, "", name)
}
