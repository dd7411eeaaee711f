// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pushsvc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("push subscription not found")
)

// SubscriptionRepository defines the interface for push subscription database operations.
type SubscriptionRepository interface {
	// FindByUserIDs retrieves every subscription owned by any of the given users in one read.
	FindByUserIDs(ctx context.Context, userIDs []string) ([]*entity.PushSubscription, error)

	// FindByEndpoint retrieves the subscription registered for an endpoint.
	FindByEndpoint(ctx context.Context, endpoint string) (*entity.PushSubscription, error)

	// Upsert creates the subscription or, when the endpoint is already known,
	// reassigns it to the given user and refreshes its keys.
	Upsert(ctx context.Context, subscription *entity.PushSubscription) error

	// TouchLastUsed sets last_used on all given subscriptions in one write.
	TouchLastUsed(ctx context.Context, ids []uuid.UUID, usedAt time.Time) error

	// DeleteByID removes a single subscription.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteByEndpoint removes a user's subscription for an endpoint.
	DeleteByEndpoint(ctx context.Context, userID, endpoint string) error

	// FindStaleIDs lists subscriptions whose last_used is before the cutoff.
	FindStaleIDs(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)

	// DeleteByIDs removes the given subscriptions and returns how many rows were deleted.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
