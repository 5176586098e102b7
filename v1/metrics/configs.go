package metrics

// DefaultJob is the Pushgateway job name used when none is configured.
const DefaultJob = "qdrant_smoketest"

// Config defines the configuration for the run metrics.
type Config struct {
	// PushgatewayURL is the Prometheus Pushgateway the metrics are pushed to
	// once the run finishes. Empty disables pushing.
	//
	// Example: "http://pushgateway.monitoring:9091"
	PushgatewayURL string `yaml:"pushgateway_url" envconfig:"METRICS_PUSHGATEWAY_URL"`

	// Job is the Pushgateway grouping job. Defaults to DefaultJob.
	Job string `yaml:"job" envconfig:"METRICS_JOB"`

	// EnableDefaultCollectors controls whether Go runtime and process
	// metrics are registered as well.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace sets a global prefix for all metrics.
	//
	// Example:
	//   Namespace: "qdrant"
	//   → Metric name becomes "qdrant_smoketest_runs_total"
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is added as the "service" label to every metric.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}
