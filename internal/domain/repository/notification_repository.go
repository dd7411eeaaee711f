// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pushsvc/internal/domain/entity"
)

// NotificationRepository defines the interface for notification history and audit logs.
type NotificationRepository interface {
	// CreateRecord persists a notification history record.
	CreateRecord(ctx context.Context, record *entity.NotificationRecord) error

	// CreateLog persists a single notification log entry.
	CreateLog(ctx context.Context, log *entity.NotificationLog) error

	// BatchCreateLogs persists multiple notification log entries in one batch.
	BatchCreateLogs(ctx context.Context, logs []*entity.NotificationLog) error

	// FindRecentLogs retrieves the non-rate-limited log entries of the given users
	// sent at or after since, newest first.
	FindRecentLogs(ctx context.Context, userIDs []string, since time.Time) ([]*entity.NotificationLog, error)
}
