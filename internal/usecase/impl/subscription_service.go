package impl

import (
	"context"
	"log/slog"

	"pushsvc/internal/domain/entity"
	domainerrors "pushsvc/internal/domain/errors"
	"pushsvc/internal/domain/repository"
	"pushsvc/internal/domain/service"
	"pushsvc/internal/errors"
	"pushsvc/internal/infra/validator"
	"pushsvc/internal/usecase"

	"github.com/google/uuid"
)

type subscriptionService struct {
	logger           *slog.Logger
	validator        *validator.Validator
	subscriptionRepo repository.SubscriptionRepository
	transport        service.PushTransport
	clock            service.Clock
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(
	logger *slog.Logger,
	validator *validator.Validator,
	subscriptionRepo repository.SubscriptionRepository,
	transport service.PushTransport,
	clock service.Clock,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		logger:           logger,
		validator:        validator,
		subscriptionRepo: subscriptionRepo,
		transport:        transport,
		clock:            clock,
	}
}

// Subscribe registers a push endpoint for the user
func (s *subscriptionService) Subscribe(ctx context.Context, userID string, in *usecase.SubscribeInput) (*entity.PushSubscription, error) {
	if in == nil {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("request body is required")
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	subscription := &entity.PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Endpoint:  in.Endpoint,
		P256dh:    in.Keys.P256dh,
		Auth:      in.Keys.Auth,
		LastUsed:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.subscriptionRepo.Upsert(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to save subscription")
	}

	s.logger.InfoContext(ctx, "Push subscription registered",
		slog.String("user_id", userID),
		slog.String("subscription_id", subscription.ID.String()),
	)

	return subscription, nil
}

// ListSubscriptions returns the user's subscriptions
func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID string) ([]*entity.PushSubscription, error) {
	subscriptions, err := s.subscriptionRepo.FindByUserIDs(ctx, []string{userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}

// Unsubscribe removes the user's subscription for the endpoint
func (s *subscriptionService) Unsubscribe(ctx context.Context, userID, endpoint string) error {
	if endpoint == "" {
		return domainerrors.ErrInvalidRequest.WithDetails("endpoint is required")
	}

	err := s.subscriptionRepo.DeleteByEndpoint(ctx, userID, endpoint)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		return domainerrors.ErrSubscriptionNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	s.logger.InfoContext(ctx, "Push subscription removed", slog.String("user_id", userID))

	return nil
}

// ApplicationServerKey returns the VAPID public key
func (s *subscriptionService) ApplicationServerKey() string {
	return s.transport.PublicKey()
}
