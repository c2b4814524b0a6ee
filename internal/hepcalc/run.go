package hepcalc

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run calculates every configured event and reports the results to out in
// configuration order. Events are independent, each one owns its vectors, so
// they are spread over up to cfg.Workers goroutines.
//
// Non-finite answers are results, not errors. Errors come only from invalid
// configuration, cancellation or a failing writer.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *zap.Logger) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	reporter, err := NewReporter(cfg.Format)
	if err != nil {
		return nil, err
	}

	events := make([]*Event, len(cfg.Events))
	for i, ec := range cfg.Events {
		if ec.Name == "" {
			ec.Name = fmt.Sprintf("event-%d", i)
		}
		if events[i], err = ec.Build(); err != nil {
			return nil, err
		}
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("runId", runID))
	logger.Debug("starting run", zap.Int("events", len(events)))

	results, err := calculateAll(ctx, events, cfg.Workers)
	if err != nil {
		return nil, err
	}

	var stages *StageLogCache
	if Debug {
		stages = newStageLogCache()
	}
	for i, r := range results {
		if stages != nil {
			stages.logResult(i, r)
		}
		if !r.Finite() {
			logger.Warn("non-finite answer",
				zap.String("event", r.Name),
				zap.Float64("logSoft", r.LogSoft),
				zap.Float64("logHard", r.LogHard),
				zap.Float64("transformedM2", r.Transformed.M2()))
		}
	}
	if stages != nil {
		stages.stats(logger)
	}

	if err := reporter.Report(out, Report{RunID: runID, Results: results}); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	logger.Debug("run finished")
	return results, nil
}

func calculateAll(ctx context.Context, events []*Event, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(events))

	results := make([]Result, len(events))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, ev := range events {
		if gctx.Err() != nil {
			break
		}
		i, ev := i, ev
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Calculate(ev)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// cancelled before anything was scheduled
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
