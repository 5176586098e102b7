package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/logger"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/metrics"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/qdrant"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/smoketest"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/tracer"
)

const stopTimeout = 15 * time.Second

func main() {
	cmd := &cli.Command{
		Name:   serviceName,
		Usage:  "Check that a Qdrant instance can create, fill, search and drop a collection",
		Flags:  flags(),
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err.Error())
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}

	logClient := logger.NewLoggerClient(cfg.Logger)
	defer func() { _ = logClient.Zap.Sync() }()

	fail := func(err error) error {
		logClient.Error("Smoke test failed", err, map[string]interface{}{
			"step":       smoketest.FailedStep(err),
			"collection": cfg.Smoketest.Collection,
		})
		return cli.Exit("", 1)
	}

	if err := cfg.Smoketest.Validate(); err != nil {
		return fail(&smoketest.StepError{Step: smoketest.StepConfigure, Err: err})
	}

	var (
		runner *smoketest.Runner
		tr     *tracer.Tracer
	)

	app := newApp(cfg, logClient, os.Stdout, fx.Populate(&runner, &tr))
	if err := app.Err(); err != nil {
		return fail(connectError(err))
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		return fail(connectError(err))
	}

	if parent := cmd.String("traceparent"); parent != "" {
		ctx = tr.SetCarrierOnContext(ctx, map[string]string{"traceparent": parent})
	}

	runCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	_, runErr := runner.Run(runCtx)
	cancel()

	// metrics push and span flush happen on stop, so it gets its own deadline
	stopCtx, cancelStop := context.WithTimeout(context.Background(), stopTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		logClient.Warn("Shutdown did not complete cleanly", err, nil)
	}

	if runErr != nil {
		return fail(runErr)
	}
	return nil
}

// newApp wires the Qdrant client, observability and the runner. The logger
// is built before the app so that startup failures are logged too.
func newApp(cfg AppConfig, logClient *logger.LoggerClient, out io.Writer, opts ...fx.Option) *fx.App {
	options := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: logClient.Zap}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Supply(
			&cfg.Qdrant,
			cfg.Smoketest,
			cfg.Metrics,
			cfg.Tracer,
			logClient,
		),
		fx.Provide(
			func(c *logger.LoggerClient) logger.Logger { return c },
			fx.Annotate(
				func() io.Writer { return out },
				fx.ResultTags(`name:"report_output"`),
			),
		),
		fx.Invoke(logger.RegisterLoggerLifecycle),
		qdrant.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		smoketest.FXModule,
	}
	return fx.New(append(options, opts...)...)
}

// connectError attributes an fx startup failure to the connect step unless
// it already names a step.
func connectError(err error) error {
	if smoketest.FailedStep(err) != "" {
		return err
	}
	return &smoketest.StepError{Step: smoketest.StepConnect, Err: err}
}
