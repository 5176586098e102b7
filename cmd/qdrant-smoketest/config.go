package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/logger"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/metrics"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/qdrant"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/smoketest"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/tracer"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

const serviceName = "qdrant-smoketest"

const defaultTimeout = time.Minute

// AppConfig is the content of the optional YAML config file. Flags and
// environment variables override it.
type AppConfig struct {
	Qdrant    qdrant.Config    `yaml:"qdrant"`
	Smoketest smoketest.Config `yaml:"smoketest"`
	Logger    logger.Config    `yaml:"logger"`
	Metrics   metrics.Config   `yaml:"metrics"`
	Tracer    tracer.Config    `yaml:"tracer"`

	// Timeout bounds the whole run, connection excluded.
	Timeout time.Duration `yaml:"timeout"`
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Qdrant:    *qdrant.DefaultConfig(),
		Smoketest: smoketest.DefaultConfig(),
		Logger: logger.Config{
			Level:       logger.Info,
			ServiceName: serviceName,
		},
		Metrics: metrics.Config{
			Job:         metrics.DefaultJob,
			ServiceName: serviceName,
		},
		Tracer: tracer.Config{
			ServiceName: serviceName,
		},
		Timeout: defaultTimeout,
	}
}

// loadConfig returns the defaults overlaid with the YAML file at path.
// An empty path yields the defaults.
func loadConfig(path string) (AppConfig, error) {
	cfg := defaultAppConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

// applyFlags copies every flag that was set on the command line or through
// its environment variable into cfg.
func applyFlags(cmd *cli.Command, cfg *AppConfig) error {
	if cmd.IsSet("host") {
		cfg.Qdrant.Endpoint = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Qdrant.Port = cmd.Int("port")
	}
	if cmd.IsSet("api-key") {
		cfg.Qdrant.ApiKey = cmd.String("api-key")
	}
	if cmd.IsSet("tls") {
		cfg.Qdrant.UseTLS = cmd.Bool("tls")
	}
	if cmd.IsSet("connect-timeout") {
		cfg.Qdrant.Timeout = cmd.Duration("connect-timeout")
	}

	if cmd.IsSet("collection") {
		cfg.Smoketest.Collection = cmd.String("collection")
	}
	if cmd.IsSet("dimension") {
		cfg.Smoketest.Dimension = cmd.Int("dimension")
	}
	if cmd.IsSet("points") {
		cfg.Smoketest.Points = cmd.Int("points")
	}
	if cmd.IsSet("limit") {
		cfg.Smoketest.Limit = cmd.Int("limit")
	}
	if cmd.IsSet("distance") {
		d, err := vectordb.ParseDistance(cmd.String("distance"))
		if err != nil {
			return err
		}
		cfg.Smoketest.Distance = d
	}
	if cmd.IsSet("seed") {
		cfg.Smoketest.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("no-verify") {
		cfg.Smoketest.Verify = !cmd.Bool("no-verify")
	}
	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
	}

	if cmd.IsSet("log-level") {
		cfg.Logger.Level = cmd.String("log-level")
	}
	if cmd.IsSet("pushgateway") {
		cfg.Metrics.PushgatewayURL = cmd.String("pushgateway")
	}
	if cmd.IsSet("otlp-endpoint") {
		cfg.Tracer.Endpoint = cmd.String("otlp-endpoint")
		cfg.Tracer.EnableExport = cfg.Tracer.Endpoint != ""
	}

	cfg.Logger.EnableTracing = cfg.Tracer.EnableExport
	return nil
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "config",
			Aliases:   []string{"c"},
			Usage:     "Path to a YAML config file",
			TakesFile: true,
			Sources:   cli.EnvVars("SMOKETEST_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "host",
			Usage:   "Qdrant host",
			Value:   "localhost",
			Sources: cli.EnvVars("QDRANT_ENDPOINT"),
		},
		&cli.IntFlag{
			Name:    "port",
			Usage:   "Qdrant gRPC port",
			Value:   qdrant.DefaultPort,
			Sources: cli.EnvVars("QDRANT_PORT"),
		},
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "Qdrant API key",
			Sources: cli.EnvVars("QDRANT_API_KEY"),
		},
		&cli.BoolFlag{
			Name:    "tls",
			Usage:   "Connect to Qdrant over TLS",
			Sources: cli.EnvVars("QDRANT_USE_TLS"),
		},
		&cli.DurationFlag{
			Name:    "connect-timeout",
			Usage:   "Timeout of the initial health check",
			Value:   5 * time.Second,
			Sources: cli.EnvVars("QDRANT_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:    "collection",
			Usage:   "Collection to recreate, fill and delete",
			Value:   smoketest.DefaultCollection,
			Sources: cli.EnvVars("SMOKETEST_COLLECTION"),
		},
		&cli.IntFlag{
			Name:    "dimension",
			Usage:   "Vector dimension",
			Value:   smoketest.DefaultDimension,
			Sources: cli.EnvVars("SMOKETEST_DIMENSION"),
		},
		&cli.IntFlag{
			Name:    "points",
			Usage:   "Number of random points to insert",
			Value:   smoketest.DefaultPoints,
			Sources: cli.EnvVars("SMOKETEST_POINTS"),
		},
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "Number of nearest neighbours to fetch",
			Value:   smoketest.DefaultLimit,
			Sources: cli.EnvVars("SMOKETEST_LIMIT"),
		},
		&cli.StringFlag{
			Name:    "distance",
			Usage:   "Collection distance: Cosine, Dot, Euclid or Manhattan",
			Value:   string(vectordb.DistanceCosine),
			Sources: cli.EnvVars("SMOKETEST_DISTANCE"),
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "Seed for vector generation, 0 for random",
			Sources: cli.EnvVars("SMOKETEST_SEED"),
		},
		&cli.BoolFlag{
			Name:    "no-verify",
			Usage:   "Skip the point count, result and deletion checks",
			Sources: cli.EnvVars("SMOKETEST_NO_VERIFY"),
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Timeout of the whole run",
			Value:   defaultTimeout,
			Sources: cli.EnvVars("SMOKETEST_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level: debug, info, warning or error",
			Value:   logger.Info,
			Sources: cli.EnvVars("ZAP_LOGGER_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "pushgateway",
			Usage:   "Prometheus Pushgateway URL to push run metrics to",
			Sources: cli.EnvVars("METRICS_PUSHGATEWAY_URL"),
		},
		&cli.StringFlag{
			Name:    "otlp-endpoint",
			Usage:   "OTLP/HTTP collector to export spans to",
			Sources: cli.EnvVars("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:    "traceparent",
			Usage:   "W3C traceparent of a caller trace to join",
			Sources: cli.EnvVars("TRACEPARENT"),
		},
	}
}
