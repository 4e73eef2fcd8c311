package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Completer is the sweep run on every tick.
type Completer interface {
	CompleteElapsedBookings(ctx context.Context) int64
}

// sweepTimeout bounds one sweep run.
const sweepTimeout = 30 * time.Second

// StartCompletionJob schedules the completion sweep and starts the scheduler.
// Stop the returned cron to end it; runs never overlap.
func StartCompletionJob(spec string, completer Completer, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	if _, err := c.AddFunc(spec, CompletionJob(completer, logger)); err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("Completion job scheduled", zap.String("schedule", spec))
	return c, nil
}

// CompletionJob returns the function run by the scheduler on each tick.
func CompletionJob(completer Completer, logger *zap.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		if n := completer.CompleteElapsedBookings(ctx); n > 0 {
			logger.Debug("Completion tick", zap.Int64("completed", n))
		}
	}
}
