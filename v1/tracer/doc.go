// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// Core Features:
//   - Simple span creation and management
//   - Error recording and status tracking
//   - Customizable span attributes
//   - Joining a parent trace from a W3C traceparent carrier
//   - Optional OTLP/HTTP export
//
// Basic Usage:
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//		ServiceName: "qdrant-smoketest",
//		AppEnv:      "ci",
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "smoketest.upsert")
//	defer span.End()
//
//	tracerClient.SetAttributes(span, map[string]interface{}{
//		"collection": "test_collection",
//		"points":     10,
//	})
//
//	if err != nil {
//		tracerClient.RecordErrorOnSpan(span, err)
//		return err
//	}
//
// Joining a CI pipeline trace:
//
//	ctx = tracerClient.SetCarrierOnContext(ctx, map[string]string{
//		"traceparent": os.Getenv("TRACEPARENT"),
//	})
//
// FX Module Integration:
//
//	app := fx.New(
//		fx.Supply(tracer.Config{ServiceName: "qdrant-smoketest"}),
//		logger.FXModule,
//		tracer.FXModule,
//	)
package tracer
