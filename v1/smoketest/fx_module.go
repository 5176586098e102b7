package smoketest

import (
	"io"
	"os"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/logger"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/metrics"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/tracer"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

// FXModule provides *Runner.
//
// Dependencies required by this module:
//   - smoketest.Config
//   - vectordb.Service (qdrant.FXModule)
//   - logger.Logger (logger.FXModule)
//   - metrics.MetricsCollector (metrics.FXModule)
//   - *tracer.Tracer (tracer.FXModule)
//   - optionally an io.Writer named "report_output"; stdout otherwise
var FXModule = fx.Module("smoketest",
	fx.Provide(NewRunnerFromParams),
)

// RunnerParams defines dependencies needed to construct the runner.
type RunnerParams struct {
	fx.In
	Config  Config
	DB      vectordb.Service
	Logger  logger.Logger
	Metrics metrics.MetricsCollector
	Tracer  *tracer.Tracer
	Output  io.Writer `name:"report_output" optional:"true"`
}

// NewRunnerFromParams is the fx constructor for *Runner.
func NewRunnerFromParams(p RunnerParams) (*Runner, error) {
	out := p.Output
	if out == nil {
		out = os.Stdout
	}
	return NewRunner(p.Config, p.DB, p.Logger, p.Metrics, p.Tracer, out)
}
