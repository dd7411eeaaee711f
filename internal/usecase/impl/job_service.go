package impl

import (
	"context"
	"log/slog"

	"pushsvc/internal/domain/entity"
	domainerrors "pushsvc/internal/domain/errors"
	"pushsvc/internal/domain/service"
	"pushsvc/internal/infra/validator"
	"pushsvc/internal/usecase"

	"github.com/google/uuid"
)

type jobService struct {
	logger    *slog.Logger
	validator *validator.Validator
	publisher service.EventPublisher
}

// NewJobService creates a new job service instance
func NewJobService(
	logger *slog.Logger,
	validator *validator.Validator,
	publisher service.EventPublisher,
) usecase.JobUsecase {
	return &jobService{
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// Enqueue validates the request and publishes it as a dispatch job
func (s *jobService) Enqueue(ctx context.Context, callerID, requestID string, req *entity.NotificationRequest) (string, error) {
	if req == nil {
		return "", domainerrors.ErrInvalidRequest.WithDetails("request body is required")
	}
	req.Normalize()
	if err := s.validator.Validate(req); err != nil {
		return "", err
	}

	job := &service.DispatchJob{
		RequestID: requestID,
		JobID:     uuid.NewString(),
		CallerID:  callerID,
		Request:   req,
	}

	if err := s.publisher.PublishDispatchJob(ctx, job); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish dispatch job",
			slog.String("job_id", job.JobID),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrPublishFailed
	}

	s.logger.InfoContext(ctx, "Dispatch job queued",
		slog.String("job_id", job.JobID),
		slog.Int("targets", len(req.UserIDs)),
	)

	return job.JobID, nil
}
