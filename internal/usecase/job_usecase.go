package usecase

import (
	"context"

	"pushsvc/internal/domain/entity"
)

// JobUsecase queues notification sends for asynchronous dispatch
type JobUsecase interface {
	// Enqueue validates the request and publishes it, returning the job ID.
	// requestID is carried to the worker for log correlation.
	Enqueue(ctx context.Context, callerID, requestID string, req *entity.NotificationRequest) (string, error)
}
