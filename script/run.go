package script

import (
	"context"
	"fmt"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const nWorkers = 5

type task struct {
	Index  int
	Script Script
}

// RunAll replays scripts concurrently and sends one report per script to resultCh.
// Every script gets its own list. resultCh is closed before RunAll returns.
func RunAll(ctx context.Context, scripts []Script, resultCh chan<- Report) error {
	defer close(resultCh)

	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		taskCh := make(chan task, nWorkers)

		spawn("taskDistributor", parallel.Continue, func(ctx context.Context) error {
			return taskDistributor(ctx, scripts, taskCh)
		})
		for i := 0; i < nWorkers; i++ {
			spawn(fmt.Sprintf("worker-%d", i), parallel.Continue, func(ctx context.Context) error {
				return worker(ctx, taskCh, resultCh)
			})
		}

		return nil
	})
}

func taskDistributor(ctx context.Context, scripts []Script, taskCh chan<- task) error {
	defer close(taskCh)

	for i, s := range scripts {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case taskCh <- task{Index: i, Script: s}:
		}
	}
	return nil
}

func worker(ctx context.Context, taskCh <-chan task, resultCh chan<- Report) error {
	log := logger.Get(ctx)

	for t := range taskCh {
		report := Replay(t.Script)
		report.Index = t.Index

		if report.Err != nil {
			log.Warn("Script failed", zap.String("script", report.Name), zap.Error(report.Err))
		} else {
			log.Debug("Script replayed", zap.String("script", report.Name), zap.Int("steps", len(report.Steps)))
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case resultCh <- report:
		}
	}

	return nil
}
