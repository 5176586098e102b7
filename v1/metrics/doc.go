// Package metrics provides Prometheus metrics for smoke-test runs.
//
// A smoke test is a short-lived batch job, so instead of serving /metrics
// the registry is pushed to a Prometheus Pushgateway once the run is over.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the MetricsCollector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides both *Metrics and MetricsCollector interface for dependency injection
//
// # Collected Metrics
//
//	smoketest_step_duration_seconds{step}              histogram
//	smoketest_step_failures_total{step}                counter
//	smoketest_runs_total{result}                       counter
//	smoketest_last_success_timestamp_seconds{collection} gauge
//	smoketest_top_score{collection}                    gauge
//
// All metrics carry a constant service label and are prefixed with
// Config.Namespace when set.
//
// # Direct Usage (Without FX)
//
//	m := metrics.NewMetrics(metrics.Config{
//		PushgatewayURL: "http://pushgateway:9091",
//		ServiceName:    "qdrant-smoketest",
//	})
//
//	start := time.Now()
//	err := doStep()
//	m.ObserveStep("search", start, err)
//
//	m.RecordRun("test_collection", err)
//	_ = m.Push(ctx)
//
// # FX Module Integration
//
// With FXModule the push happens in the OnStop hook:
//
//	app := fx.New(
//		fx.Supply(metrics.Config{PushgatewayURL: "http://pushgateway:9091"}),
//		logger.FXModule,
//		metrics.FXModule,
//	)
package metrics
