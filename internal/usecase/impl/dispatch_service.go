package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"pushsvc/config"
	"pushsvc/internal/domain/entity"
	domainerrors "pushsvc/internal/domain/errors"
	"pushsvc/internal/domain/repository"
	"pushsvc/internal/domain/service"
	"pushsvc/internal/errors"
	"pushsvc/internal/infra/validator"
	"pushsvc/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultIcon  = "/icon-192x192.png"
	defaultBadge = "/badge-72x72.png"
	defaultURL   = "/"

	msgNoRecipients    = "No enabled recipients"
	msgNoSubscriptions = "No push subscriptions found"
)

type dispatchService struct {
	logger           *slog.Logger
	validator        *validator.Validator
	subscriptionRepo repository.SubscriptionRepository
	preferenceRepo   repository.PreferenceRepository
	notificationRepo repository.NotificationRepository
	rateLimiter      usecase.RateLimiter
	transport        service.PushTransport
	clock            service.Clock
	sendTimeout      time.Duration
	maxParallel      int
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	cfg *config.Config,
	logger *slog.Logger,
	validator *validator.Validator,
	subscriptionRepo repository.SubscriptionRepository,
	preferenceRepo repository.PreferenceRepository,
	notificationRepo repository.NotificationRepository,
	rateLimiter usecase.RateLimiter,
	transport service.PushTransport,
	clock service.Clock,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:           logger,
		validator:        validator,
		subscriptionRepo: subscriptionRepo,
		preferenceRepo:   preferenceRepo,
		notificationRepo: notificationRepo,
		rateLimiter:      rateLimiter,
		transport:        transport,
		clock:            clock,
		sendTimeout:      cfg.Dispatch.SendTimeout,
		maxParallel:      cfg.Dispatch.MaxParallel,
	}
}

// delivery is one planned send: a subscription plus its owner's content.
type delivery struct {
	subscription *entity.PushSubscription
	message      *service.PushMessage
}

// Dispatch sends the notification to every subscription of the enabled recipients
func (s *dispatchService) Dispatch(ctx context.Context, callerID string, req *entity.NotificationRequest) (*usecase.DispatchResult, error) {
	if err := s.transport.Ready(); err != nil {
		s.logger.ErrorContext(ctx, "Push transport is not configured", slog.Any("error", err))

		return nil, domainerrors.ErrServerConfiguration
	}

	if req == nil {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("request body is required")
	}
	req.Normalize()
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	recipients, overrides, err := s.resolveRecipients(ctx, uniqueStrings(req.UserIDs), req.Topic)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return &usecase.DispatchResult{Message: msgNoRecipients}, nil
	}

	subscriptions, err := s.subscriptionRepo.FindByUserIDs(ctx, recipients)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch subscriptions")
	}
	if len(subscriptions) == 0 {
		return &usecase.DispatchResult{Message: msgNoSubscriptions}, nil
	}

	now := s.clock.Now()

	record := &entity.NotificationRecord{
		ID:           uuid.New(),
		UserID:       callerID,
		RecipientIDs: recipients,
		Title:        req.Title,
		Body:         req.Body,
		Data:         req.Data,
		SentAt:       now,
	}
	if err := s.notificationRepo.CreateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create notification record")
	}

	s.touchSubscriptions(ctx, subscriptions, now)

	decisions, err := s.rateLimiter.Evaluate(ctx, &usecase.EvaluateInput{
		UserIDs:   recipients,
		Title:     req.Title,
		Body:      req.Body,
		Topic:     req.Topic,
		Data:      req.Data,
		Overrides: overrides,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate rate limits")
	}

	allowed := s.recordRejections(ctx, recipients, decisions, req, now)
	if len(allowed) == 0 {
		return nil, domainerrors.ErrRateLimited
	}

	deliveries := make([]delivery, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		decision, ok := allowed[subscription.UserID]
		if !ok {
			continue
		}
		deliveries = append(deliveries, delivery{
			subscription: subscription,
			message:      buildMessage(req, decision, now),
		})
	}

	outcomes := s.deliver(ctx, deliveries)

	results := usecase.DeliveryResults{Total: len(deliveries)}
	perUser := make(map[string]*entity.NotificationLog, len(allowed))
	for i, d := range deliveries {
		log, ok := perUser[d.subscription.UserID]
		if !ok {
			decision := allowed[d.subscription.UserID]
			log = &entity.NotificationLog{
				ID:     uuid.New(),
				UserID: d.subscription.UserID,
				Title:  decision.Title,
				Body:   decision.Body,
				Topic:  req.Topic,
				SentAt: now,
			}
			perUser[d.subscription.UserID] = log
		}

		if outcomes[i].Kind == service.PushDelivered {
			results.Successful++
			log.SuccessCount++
		} else {
			results.Failed++
			log.FailureCount++
		}
	}

	s.writeDeliveryLogs(ctx, deliveries, perUser)

	s.logger.InfoContext(ctx, "Dispatch completed",
		slog.String("caller_id", callerID),
		slog.Int("recipients", len(recipients)),
		slog.Int("total", results.Total),
		slog.Int("successful", results.Successful),
		slog.Int("failed", results.Failed),
	)

	return &usecase.DispatchResult{
		Message: fmt.Sprintf("Sent push notifications to %d of %d devices", results.Successful, results.Total),
		Results: results,
	}, nil
}

// resolveRecipients keeps the targets that accept push for the topic.
// A target without a preference row gets the default preference, which is enabled.
func (s *dispatchService) resolveRecipients(
	ctx context.Context,
	targets []string,
	topic string,
) ([]string, map[string]*entity.RateLimitOverride, error) {
	preferences, err := s.preferenceRepo.FindByUserIDs(ctx, targets)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to fetch preferences")
	}

	byUser := make(map[string]*entity.UserPreference, len(preferences))
	for _, preference := range preferences {
		byUser[preference.UserID] = preference
	}

	recipients := make([]string, 0, len(targets))
	overrides := make(map[string]*entity.RateLimitOverride)
	for _, userID := range targets {
		preference, ok := byUser[userID]
		if !ok {
			preference = entity.DefaultUserPreference(userID)
		}

		if !preference.PushNotificationsEnabled || !preference.AllowsTopic(topic) {
			continue
		}

		recipients = append(recipients, userID)
		if preference.RateLimit != nil {
			overrides[userID] = preference.RateLimit
		}
	}

	return recipients, overrides, nil
}

// touchSubscriptions marks every fetched subscription as used before delivery.
// Failure is logged and does not stop the dispatch.
func (s *dispatchService) touchSubscriptions(ctx context.Context, subscriptions []*entity.PushSubscription, now time.Time) {
	ids := make([]uuid.UUID, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		ids = append(ids, subscription.ID)
	}

	if err := s.subscriptionRepo.TouchLastUsed(ctx, ids, now); err != nil {
		s.logger.WarnContext(ctx, "Failed to update subscription last_used",
			slog.Int("count", len(ids)),
			slog.Any("error", err),
		)
	}
}

// recordRejections writes a rate_limited log row for each rejected recipient
// and returns the decisions of the allowed ones.
func (s *dispatchService) recordRejections(
	ctx context.Context,
	recipients []string,
	decisions map[string]*usecase.Decision,
	req *entity.NotificationRequest,
	now time.Time,
) map[string]*usecase.Decision {
	allowed := make(map[string]*usecase.Decision, len(recipients))
	rejected := make([]*entity.NotificationLog, 0)

	for _, userID := range recipients {
		decision, ok := decisions[userID]
		if ok && decision.ShouldSend {
			allowed[userID] = decision
			continue
		}

		rejected = append(rejected, &entity.NotificationLog{
			ID:          uuid.New(),
			UserID:      userID,
			Title:       req.Title,
			Body:        req.Body,
			Topic:       req.Topic,
			SentAt:      now,
			RateLimited: true,
		})
	}

	if len(rejected) == 0 {
		return allowed
	}

	s.logger.InfoContext(ctx, "Notification rate limited",
		slog.Int("rejected", len(rejected)),
		slog.Int("allowed", len(allowed)),
	)

	if err := s.notificationRepo.BatchCreateLogs(ctx, rejected); err != nil {
		s.logger.ErrorContext(ctx, "Failed to write rate limit logs", slog.Any("error", err))
	}

	return allowed
}

// deliver sends all messages concurrently. Outcomes are index-aligned with
// deliveries and one failing send never cancels the others.
func (s *dispatchService) deliver(ctx context.Context, deliveries []delivery) []service.PushOutcome {
	outcomes := make([]service.PushOutcome, len(deliveries))

	var group errgroup.Group
	if s.maxParallel > 0 {
		group.SetLimit(s.maxParallel)
	}

	for i := range deliveries {
		group.Go(func() error {
			outcomes[i] = s.sendOne(ctx, deliveries[i])

			return nil
		})
	}
	_ = group.Wait()

	return outcomes
}

func (s *dispatchService) sendOne(ctx context.Context, d delivery) (outcome service.PushOutcome) {
	logger := s.logger.With(
		slog.String("subscription_id", d.subscription.ID.String()),
		slog.String("user_id", d.subscription.UserID),
	)

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "Push send panicked", slog.Any("panic", r))
			outcome = service.PushOutcome{Kind: service.PushFailed, Detail: fmt.Sprint(r)}
		}
	}()

	sendCtx := ctx
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	outcome = s.transport.Send(sendCtx, d.subscription, d.message)

	switch outcome.Kind {
	case service.PushDelivered:
		logger.DebugContext(ctx, "Push delivered")
	case service.PushGone:
		logger.InfoContext(ctx, "Push endpoint gone, removing subscription", slog.Int("status", outcome.StatusCode))
		if err := s.subscriptionRepo.DeleteByID(ctx, d.subscription.ID); err != nil {
			logger.ErrorContext(ctx, "Failed to delete gone subscription", slog.Any("error", err))
		}
	default:
		logger.WarnContext(ctx, "Push delivery failed",
			slog.Int("status", outcome.StatusCode),
			slog.String("detail", outcome.Detail),
		)
	}

	return outcome
}

// writeDeliveryLogs stores one log row per user that had at least one delivery attempt.
func (s *dispatchService) writeDeliveryLogs(
	ctx context.Context,
	deliveries []delivery,
	perUser map[string]*entity.NotificationLog,
) {
	if len(perUser) == 0 {
		return
	}

	logs := make([]*entity.NotificationLog, 0, len(perUser))
	seen := make(map[string]bool, len(perUser))
	for _, d := range deliveries {
		userID := d.subscription.UserID
		if seen[userID] {
			continue
		}
		seen[userID] = true
		logs = append(logs, perUser[userID])
	}

	if err := s.notificationRepo.BatchCreateLogs(ctx, logs); err != nil {
		s.logger.ErrorContext(ctx, "Failed to write notification logs", slog.Any("error", err))
	}
}

// buildMessage applies payload defaults and the rate limiter's content.
func buildMessage(req *entity.NotificationRequest, decision *usecase.Decision, now time.Time) *service.PushMessage {
	url := valueOr(req.URL, defaultURL)

	data := make(map[string]any, len(decision.Data)+1)
	maps.Copy(data, decision.Data)
	data["url"] = url

	return &service.PushMessage{
		Title:     decision.Title,
		Body:      decision.Body,
		Icon:      valueOr(req.Icon, defaultIcon),
		Badge:     valueOr(req.Badge, defaultBadge),
		Image:     req.Image,
		URL:       url,
		Tag:       req.Tag,
		Data:      data,
		Actions:   req.Actions,
		Timestamp: now.UnixMilli(),
	}
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// uniqueStrings removes duplicates and keeps first-seen order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
