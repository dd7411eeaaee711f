package usecase

import (
	"context"

	"pushsvc/internal/domain/entity"
)

// SubscriptionKeys are the client encryption keys of a push subscription.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

// SubscribeInput mirrors the browser PushSubscription JSON.
type SubscribeInput struct {
	Endpoint string           `json:"endpoint" validate:"required,url"`
	Keys     SubscriptionKeys `json:"keys" validate:"required"`
}

// SubscriptionUsecase defines the interface for push subscription management
type SubscriptionUsecase interface {
	// Subscribe registers the endpoint for the user, taking it over if another user held it
	Subscribe(ctx context.Context, userID string, in *SubscribeInput) (*entity.PushSubscription, error)

	// ListSubscriptions returns the user's registered subscriptions
	ListSubscriptions(ctx context.Context, userID string) ([]*entity.PushSubscription, error)

	// Unsubscribe removes the user's subscription for the endpoint
	Unsubscribe(ctx context.Context, userID, endpoint string) error

	// ApplicationServerKey returns the VAPID public key clients subscribe with
	ApplicationServerKey() string
}
