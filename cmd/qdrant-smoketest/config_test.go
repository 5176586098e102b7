package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/logger"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/qdrant"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/smoketest"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// parse runs a command with the real flag set and returns the resulting config.
func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()

	var (
		cfg    AppConfig
		actErr error
	)
	cmd := &cli.Command{
		Name:  serviceName,
		Flags: flags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, actErr = loadConfig(cmd.String("config"))
			if actErr != nil {
				return nil
			}
			actErr = applyFlags(cmd, &cfg)
			return nil
		},
	}

	require.NoError(t, cmd.Run(context.Background(), append([]string{serviceName}, args...)))
	return cfg, actErr
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Qdrant.Endpoint)
	assert.Equal(t, qdrant.DefaultPort, cfg.Qdrant.Port)
	assert.Equal(t, smoketest.DefaultConfig(), cfg.Smoketest)
	assert.Equal(t, logger.Info, cfg.Logger.Level)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
qdrant:
  endpoint: qdrant.internal
  port: 16334
  api_key: secret
  use_tls: true
  timeout: 2s
smoketest:
  collection: smoke
  dimension: 8
  distance: Dot
  limit: 5
  seed: 7
metrics:
  pushgateway_url: http://pushgateway:9091
timeout: 30s
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "qdrant.internal", cfg.Qdrant.Endpoint)
	assert.Equal(t, 16334, cfg.Qdrant.Port)
	assert.Equal(t, "secret", cfg.Qdrant.ApiKey)
	assert.True(t, cfg.Qdrant.UseTLS)
	assert.Equal(t, 2*time.Second, cfg.Qdrant.Timeout)

	assert.Equal(t, "smoke", cfg.Smoketest.Collection)
	assert.Equal(t, 8, cfg.Smoketest.Dimension)
	assert.Equal(t, vectordb.DistanceDot, cfg.Smoketest.Distance)
	assert.Equal(t, 5, cfg.Smoketest.Limit)
	assert.Equal(t, uint64(7), cfg.Smoketest.Seed)
	// untouched keys keep their defaults
	assert.Equal(t, smoketest.DefaultPoints, cfg.Smoketest.Points)
	assert.True(t, cfg.Smoketest.Verify)

	assert.Equal(t, "http://pushgateway:9091", cfg.Metrics.PushgatewayURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "qdrant:\n  hostname: x\n"))
	assert.Error(t, err)

	cfg, err := loadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, defaultAppConfig(), cfg)
}

func TestFlags_Override(t *testing.T) {
	path := writeConfig(t, "smoketest:\n  collection: from_file\n  points: 20\n")

	cfg, err := parse(t,
		"--config", path,
		"--host", "10.0.0.5",
		"--port", "7000",
		"--collection", "from_flag",
		"--distance", "Euclid",
		"--seed", "42",
		"--no-verify",
		"--log-level", "debug",
		"--otlp-endpoint", "http://collector:4318",
	)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.Qdrant.Endpoint)
	assert.Equal(t, 7000, cfg.Qdrant.Port)
	assert.Equal(t, "from_flag", cfg.Smoketest.Collection)
	assert.Equal(t, 20, cfg.Smoketest.Points)
	assert.Equal(t, vectordb.DistanceEuclid, cfg.Smoketest.Distance)
	assert.Equal(t, uint64(42), cfg.Smoketest.Seed)
	assert.False(t, cfg.Smoketest.Verify)
	assert.Equal(t, logger.Debug, cfg.Logger.Level)
	assert.True(t, cfg.Tracer.EnableExport)
	assert.True(t, cfg.Logger.EnableTracing)
}

func TestFlags_FileWinsOverFlagDefaults(t *testing.T) {
	path := writeConfig(t, "qdrant:\n  endpoint: qdrant.internal\n")

	cfg, err := parse(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "qdrant.internal", cfg.Qdrant.Endpoint)
	assert.False(t, cfg.Tracer.EnableExport)
}

func TestFlags_EnvVars(t *testing.T) {
	t.Setenv("QDRANT_ENDPOINT", "qdrant.env")
	t.Setenv("QDRANT_API_KEY", "env-key")
	t.Setenv("SMOKETEST_COLLECTION", "env_collection")
	t.Setenv("METRICS_PUSHGATEWAY_URL", "http://pg:9091")

	cfg, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, "qdrant.env", cfg.Qdrant.Endpoint)
	assert.Equal(t, "env-key", cfg.Qdrant.ApiKey)
	assert.Equal(t, "env_collection", cfg.Smoketest.Collection)
	assert.Equal(t, "http://pg:9091", cfg.Metrics.PushgatewayURL)
}

func TestFlags_InvalidDistance(t *testing.T) {
	_, err := parse(t, "--distance", "cosine")
	assert.Error(t, err)
}

func TestConnectError(t *testing.T) {
	err := connectError(assert.AnError)
	assert.Equal(t, smoketest.StepConnect, smoketest.FailedStep(err))
	assert.ErrorIs(t, err, assert.AnError)

	configured := &smoketest.StepError{Step: smoketest.StepConfigure, Err: assert.AnError}
	assert.Equal(t, smoketest.StepConfigure, smoketest.FailedStep(connectError(configured)))
}

func TestNewApp_UnreachableQdrant(t *testing.T) {
	// grab a port nobody listens on
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	cfg := defaultAppConfig()
	cfg.Qdrant.Endpoint = "127.0.0.1"
	cfg.Qdrant.Port = port
	cfg.Qdrant.Timeout = 2 * time.Second
	cfg.Qdrant.CheckCompatibility = false

	var runner *smoketest.Runner
	app := newApp(cfg, logger.NewFromZap(zap.NewNop(), false), &bytes.Buffer{}, fx.Populate(&runner))

	err = connectError(app.Err())
	require.Error(t, err)
	assert.Equal(t, smoketest.StepConnect, smoketest.FailedStep(err))
	assert.Nil(t, runner)
}
