package impl

import (
	"context"
	"log/slog"
	"time"

	"pushsvc/config"
	"pushsvc/internal/domain/repository"
	"pushsvc/internal/domain/service"
	"pushsvc/internal/usecase"
)

type cleanupService struct {
	logger           *slog.Logger
	subscriptionRepo repository.SubscriptionRepository
	clock            service.Clock
	staleAfter       time.Duration
	batchSize        int
}

// NewCleanupService creates a new stale subscription cleanup service
func NewCleanupService(
	cfg *config.Config,
	logger *slog.Logger,
	subscriptionRepo repository.SubscriptionRepository,
	clock service.Clock,
) usecase.CleanupUsecase {
	return &cleanupService{
		logger:           logger,
		subscriptionRepo: subscriptionRepo,
		clock:            clock,
		staleAfter:       cfg.Cleanup.StaleAfter,
		batchSize:        max(cfg.Cleanup.BatchSize, 1),
	}
}

// CleanupStaleSubscriptions deletes subscriptions unused since the cutoff in fixed-size batches
func (s *cleanupService) CleanupStaleSubscriptions(ctx context.Context) *usecase.CleanupResult {
	result := &usecase.CleanupResult{}
	cutoff := s.clock.Now().Add(-s.staleAfter)

	ids, err := s.subscriptionRepo.FindStaleIDs(ctx, cutoff)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to find stale subscriptions",
			slog.Time("cutoff", cutoff),
			slog.Any("error", err),
		)

		return result
	}

	result.Found = len(ids)
	if len(ids) == 0 {
		s.logger.InfoContext(ctx, "No stale subscriptions found", slog.Time("cutoff", cutoff))

		return result
	}

	for start := 0; start < len(ids); start += s.batchSize {
		end := min(start+s.batchSize, len(ids))

		deleted, err := s.subscriptionRepo.DeleteByIDs(ctx, ids[start:end])
		if err != nil {
			result.FailedBatches++
			s.logger.ErrorContext(ctx, "Failed to delete stale subscription batch",
				slog.Int("batch_start", start),
				slog.Int("batch_size", end-start),
				slog.Any("error", err),
			)

			continue
		}

		result.Deleted += int(deleted)
	}

	s.logger.InfoContext(ctx, "Stale subscription cleanup completed",
		slog.Int("found", result.Found),
		slog.Int("deleted", result.Deleted),
		slog.Int("failed_batches", result.FailedBatches),
	)

	return result
}
