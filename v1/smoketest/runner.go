package smoketest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/logger"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/metrics"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/tracer"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

// Runner executes the smoke test against a vectordb.Service:
//
//	recreate collection → upsert → count → search → verify → report → delete
//
// Steps run strictly in order and nothing is retried. A failing step ends
// the run and nothing already done is undone, so a failure after the
// recreate step leaves the collection behind.
type Runner struct {
	cfg     Config
	db      vectordb.Service
	log     logger.Logger
	metrics metrics.MetricsCollector
	tracer  *tracer.Tracer
	out     io.Writer
	gen     *Generator
}

// NewRunner validates cfg and builds a runner. Console output goes to out.
func NewRunner(cfg Config, db vectordb.Service, log logger.Logger, m metrics.MetricsCollector, tr *tracer.Tracer, out io.Writer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &StepError{Step: StepConfigure, Err: err}
	}

	return &Runner{
		cfg:     cfg,
		db:      db,
		log:     log,
		metrics: m,
		tracer:  tr,
		out:     out,
		gen:     NewGenerator(cfg.Seed),
	}, nil
}

// Run performs the full sequence once. The returned report is partially
// filled when err is non-nil.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	ctx, span := r.tracer.StartSpan(ctx, "smoketest.run")
	defer span.End()
	r.tracer.SetAttributes(span, map[string]interface{}{
		"collection": r.cfg.Collection,
		"dimension":  r.cfg.Dimension,
		"points":     r.cfg.Points,
		"limit":      r.cfg.Limit,
	})

	report := &Report{Collection: r.cfg.Collection}

	err := r.run(ctx, report)
	report.Elapsed = time.Since(start)
	r.metrics.RecordRun(r.cfg.Collection, err)

	if err != nil {
		r.tracer.RecordErrorOnSpan(span, err)
		return report, err
	}

	r.log.InfoWithContext(ctx, "Smoke test passed", nil, map[string]interface{}{
		"collection":  r.cfg.Collection,
		"duration_ms": report.Elapsed.Milliseconds(),
	})
	return report, nil
}

func (r *Runner) run(ctx context.Context, report *Report) error {
	spec := r.cfg.collectionSpec()

	if err := r.step(ctx, StepRecreate, func(ctx context.Context) error {
		return r.db.RecreateCollection(ctx, spec)
	}); err != nil {
		return err
	}

	report.Points = r.gen.Points(r.cfg.Points, r.cfg.Dimension)

	if err := r.step(ctx, StepUpsert, func(ctx context.Context) error {
		if err := checkDimensions(report.Points, r.cfg.Dimension); err != nil {
			return err
		}
		return r.db.Upsert(ctx, r.cfg.Collection, report.Points)
	}); err != nil {
		return err
	}

	if err := r.step(ctx, StepCount, func(ctx context.Context) error {
		n, err := r.db.Count(ctx, r.cfg.Collection)
		if err != nil {
			return err
		}
		report.StoredPoints = n
		if r.cfg.Verify && n != uint64(len(report.Points)) {
			return fmt.Errorf("%w: stored %d, inserted %d", ErrPointCount, n, len(report.Points))
		}
		return nil
	}); err != nil {
		return err
	}

	report.Query = r.gen.Vector(r.cfg.Dimension)

	if err := r.step(ctx, StepSearch, func(ctx context.Context) error {
		results, err := r.db.Search(ctx, vectordb.SearchRequest{
			CollectionName: r.cfg.Collection,
			Vector:         report.Query,
			TopK:           r.cfg.Limit,
		})
		if err != nil {
			return err
		}
		report.Results = results
		if len(results) > 0 {
			r.metrics.SetTopScore(r.cfg.Collection, float64(results[0].Score))
		}
		return nil
	}); err != nil {
		return err
	}

	if r.cfg.Verify {
		if err := r.step(ctx, StepVerify, func(ctx context.Context) error {
			return verifyResults(report.Results, r.cfg.Limit, len(report.Points))
		}); err != nil {
			return err
		}
	}

	if err := r.step(ctx, StepReport, func(ctx context.Context) error {
		return WriteResults(r.out, report.Results)
	}); err != nil {
		return err
	}

	if err := r.step(ctx, StepDelete, func(ctx context.Context) error {
		if err := r.db.DeleteCollection(ctx, r.cfg.Collection); err != nil {
			return err
		}
		if !r.cfg.Verify {
			return nil
		}
		exists, err := r.db.CollectionExists(ctx, r.cfg.Collection)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrCollectionNotDeleted, r.cfg.Collection)
		}
		return nil
	}); err != nil {
		return err
	}

	return WriteSuccess(r.out)
}

// step runs fn inside its own span, records its duration and wraps a
// failure in *StepError.
func (r *Runner) step(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	start := time.Now()

	ctx, span := r.tracer.StartSpan(ctx, "smoketest."+name)
	defer span.End()

	err := fn(ctx)
	r.metrics.ObserveStep(name, start, err)

	if err != nil {
		r.tracer.RecordErrorOnSpan(span, err)
		r.log.ErrorWithContext(ctx, "Smoke test step failed", err, map[string]interface{}{
			"step":       name,
			"collection": r.cfg.Collection,
		})
		return &StepError{Step: name, Err: err}
	}

	r.log.DebugWithContext(ctx, "Smoke test step done", nil, map[string]interface{}{
		"step":        name,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}
