// Package scheduler runs periodic maintenance inside the worker.
package scheduler

import (
	"context"
	"log/slog"

	"pushsvc/config"
	"pushsvc/internal/delivery"
	deliverycontext "pushsvc/internal/delivery/context"
	"pushsvc/internal/domain/lifecycle"
	"pushsvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the stale subscription sweeper
type SweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	CleanupUC usecase.CleanupUsecase
}

// Sweeper removes stale subscriptions on the configured cron schedule
type Sweeper struct {
	cron      *cron.Cron
	schedule  string
	logger    *slog.Logger
	cleanupUC usecase.CleanupUsecase
}

// NewSweeper validates the schedule and registers the sweep. An empty
// schedule disables it; Serve then returns immediately.
func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	s := &Sweeper{
		cron:      cron.New(cron.WithLogger(cronLogger{logger: params.Logger})),
		schedule:  params.Cfg.Cleanup.Schedule,
		logger:    params.Logger,
		cleanupUC: params.CleanupUC,
	}

	if s.schedule != "" {
		if _, err := s.cron.AddFunc(s.schedule, s.Sweep); err != nil {
			return nil, errors.Wrapf(err, "invalid cleanup schedule %q", s.schedule)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the scheduler in the background
func (s *Sweeper) Serve(ctx context.Context) error {
	if s.schedule == "" {
		s.logger.Info("Stale subscription sweep disabled")

		return nil
	}

	s.logger.Info("Starting stale subscription sweeper", slog.String("schedule", s.schedule))
	s.cron.Start()

	return nil
}

// Sweep runs one cleanup pass with its own request id for log correlation
func (s *Sweeper) Sweep() {
	requestID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", requestID))

	ctx := deliverycontext.WithRequestID(context.Background(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	result := s.cleanupUC.CleanupStaleSubscriptions(ctx)

	logger.Info("Scheduled stale subscription sweep finished",
		slog.Int("found", result.Found),
		slog.Int("deleted", result.Deleted),
		slog.Int("failed_batches", result.FailedBatches),
	)
}

// stop waits for a running sweep to finish
func (s *Sweeper) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Stopping stale subscription sweeper")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "sweep still running at shutdown")
	}
}

// cronLogger routes cron's internal logging to slog
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Cron] "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
