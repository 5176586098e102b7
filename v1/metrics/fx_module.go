package metrics

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/logger"
)

// FXModule provides *Metrics and MetricsCollector and pushes the registry
// to the Pushgateway when the app stops, i.e. after the run has finished.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) MetricsCollector { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle pushes metrics on shutdown. A failed push is
// logged and does not fail the shutdown.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if !m.PushEnabled() {
				return nil
			}

			if err := m.Push(ctx); err != nil {
				log.Warn("Pushing metrics failed", err, nil)
				return nil
			}

			log.Info("Metrics pushed", nil, map[string]interface{}{
				"pushgateway": m.cfg.PushgatewayURL,
				"job":         m.cfg.Job,
			})
			return nil
		},
	})
}
