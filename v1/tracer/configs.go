package tracer

// Config defines the tracing settings.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is reported as deployment.environment.
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport turns on the OTLP/HTTP exporter. Without it spans are
	// created (and show up in logs) but never leave the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint is the OTLP/HTTP collector, either host:port or a full URL
	// such as http://collector:4318. Empty means the exporter's own default,
	// which honours OTEL_EXPORTER_OTLP_ENDPOINT.
	Endpoint string `yaml:"endpoint" envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" envconfig:"TRACER_INSECURE"`
}
