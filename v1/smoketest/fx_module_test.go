package smoketest

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/logger"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/metrics"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/tracer"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

func TestFXModule(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := vectordb.NewMockService(ctrl)
	out := &bytes.Buffer{}

	var runner *Runner

	app := fxtest.New(t,
		fx.Supply(seededConfig(), metrics.Config{ServiceName: "test"}),
		fx.Provide(
			func() vectordb.Service { return db },
			func() logger.Logger { return logger.NewFromZap(zap.NewNop(), false) },
			func(log logger.Logger) *tracer.Tracer {
				return tracer.NewFromProvider(sdktrace.NewTracerProvider(), log)
			},
			fx.Annotate(
				func() io.Writer { return out },
				fx.ResultTags(`name:"report_output"`),
			),
		),
		metrics.FXModule,
		FXModule,
		fx.Populate(&runner),
	)

	app.RequireStart()
	defer app.RequireStop()
	require.NotNil(t, runner)

	db.EXPECT().RecreateCollection(gomock.Any(), gomock.Any()).Return(nil)
	db.EXPECT().Upsert(gomock.Any(), DefaultCollection, gomock.Len(DefaultPoints)).Return(nil)
	db.EXPECT().Count(gomock.Any(), DefaultCollection).Return(uint64(DefaultPoints), nil)
	db.EXPECT().Search(gomock.Any(), gomock.Any()).Return(goodResults(), nil)
	db.EXPECT().DeleteCollection(gomock.Any(), DefaultCollection).Return(nil)
	db.EXPECT().CollectionExists(gomock.Any(), DefaultCollection).Return(false, nil)

	_, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), successMessage)
}

func TestFXModule_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limit = 0

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			func() vectordb.Service { return nil },
			func() logger.Logger { return logger.NewFromZap(zap.NewNop(), false) },
			func() metrics.MetricsCollector { return metrics.NewMetrics(metrics.Config{}) },
			func() *tracer.Tracer { return nil },
		),
		FXModule,
		fx.Invoke(func(*Runner) {}),
	)

	err := app.Err()
	require.Error(t, err)
	assert.Equal(t, StepConfigure, FailedStep(err))
}
