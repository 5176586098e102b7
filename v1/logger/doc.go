// Package logger wraps zap with the call shape used across this module:
// a message, an optional error and optional field maps.
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "qdrant-smoketest",
//	})
//
//	log.Info("Collection recreated", nil, map[string]interface{}{
//		"collection":  "test_collection",
//		"vector_size": 4,
//	})
//	log.Error("Upsert failed", err, map[string]interface{}{"points": 10})
//
// Entries are JSON on stderr with ISO8601 timestamps, so stdout carries
// nothing but the smoke-test report and can be piped or diffed as is.
//
// # Trace Correlation
//
// With Config.EnableTracing set, the *WithContext methods add trace_id and
// span_id of the span active in ctx:
//
//	ctx, span := tr.StartSpan(ctx, "smoketest.search")
//	defer span.End()
//	log.InfoWithContext(ctx, "Search finished", nil, map[string]interface{}{"results": 3})
//
// # Fx
//
// FXModule provides *LoggerClient and Logger from a supplied Config and
// syncs the logger on stop. The qdrant-smoketest command builds the logger
// itself, before the app, so that startup failures are logged as well.
package logger
