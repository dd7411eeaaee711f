package service

import (
	"context"

	"pushsvc/internal/domain/entity"
)

// DispatchJob is a queued notification send processed by the worker.
type DispatchJob struct {
	RequestID string                      `json:"request_id,omitempty"` // For distributed tracing
	JobID     string                      `json:"job_id"`
	CallerID  string                      `json:"caller_id"`
	Request   *entity.NotificationRequest `json:"request"`
}

// EventPublisher defines the interface for publishing jobs to a message queue
type EventPublisher interface {
	// PublishDispatchJob publishes a dispatch job for async processing
	PublishDispatchJob(ctx context.Context, job *DispatchJob) error

	// Close releases any resources held by the publisher
	Close() error
}
