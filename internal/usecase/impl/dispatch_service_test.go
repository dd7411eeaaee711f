package impl

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pushsvc/config"
	"pushsvc/internal/domain/entity"
	domainerrors "pushsvc/internal/domain/errors"
	"pushsvc/internal/domain/service"
	"pushsvc/internal/infra/validator"
	mockRepo "pushsvc/internal/mocks/repository"
	mockSvc "pushsvc/internal/mocks/service"
	mockUsecase "pushsvc/internal/mocks/usecase"
	"pushsvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchMocks struct {
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	preferenceRepo   *mockRepo.MockPreferenceRepository
	notificationRepo *mockRepo.MockNotificationRepository
	rateLimiter      *mockUsecase.MockRateLimiter
	transport        *mockSvc.MockPushTransport
}

func createTestDispatchService(t *testing.T) (usecase.DispatchUsecase, *dispatchMocks) {
	return createTestDispatchServiceWithConfig(t, newTestConfig())
}

func createTestDispatchServiceWithConfig(t *testing.T, cfg *config.Config) (usecase.DispatchUsecase, *dispatchMocks) {
	m := &dispatchMocks{
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		preferenceRepo:   mockRepo.NewMockPreferenceRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		rateLimiter:      mockUsecase.NewMockRateLimiter(t),
		transport:        mockSvc.NewMockPushTransport(t),
	}

	svc := NewDispatchService(
		cfg,
		newTestLogger(),
		validator.New(),
		m.subscriptionRepo,
		m.preferenceRepo,
		m.notificationRepo,
		m.rateLimiter,
		m.transport,
		fixedClock{now: fixedNow},
	)

	return svc, m
}

func newSubscription(userID, endpoint string) *entity.PushSubscription {
	return &entity.PushSubscription{
		ID:       uuid.New(),
		UserID:   userID,
		Endpoint: endpoint,
		P256dh:   "p256dh-" + endpoint,
		Auth:     "auth-" + endpoint,
		LastUsed: fixedNow.Add(-48 * time.Hour),
	}
}

func subscriptionIDs(subscriptions ...*entity.PushSubscription) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(subscriptions))
	for _, s := range subscriptions {
		ids = append(ids, s.ID)
	}

	return ids
}

func endpointIs(endpoint string) any {
	return mock.MatchedBy(func(s *entity.PushSubscription) bool {
		return s.Endpoint == endpoint
	})
}

func sendDecision(title, body string) *usecase.Decision {
	return &usecase.Decision{ShouldSend: true, Title: title, Body: body}
}

func gameStartRequest(userIDs ...string) *entity.NotificationRequest {
	return &entity.NotificationRequest{
		UserIDs: userIDs,
		Title:   "Game start",
		Body:    "Your match begins now",
		Topic:   "match",
	}
}

// expectPipelineUntilLimiter sets up the reads and writes every accepted dispatch performs.
func expectPipelineUntilLimiter(m *dispatchMocks, userIDs []string, subscriptions []*entity.PushSubscription) {
	m.transport.EXPECT().Ready().Return(nil)
	m.preferenceRepo.EXPECT().FindByUserIDs(mock.Anything, userIDs).Return(nil, nil)
	m.subscriptionRepo.EXPECT().FindByUserIDs(mock.Anything, userIDs).Return(subscriptions, nil)
	m.notificationRepo.EXPECT().CreateRecord(mock.Anything, mock.Anything).Return(nil)
	m.subscriptionRepo.EXPECT().TouchLastUsed(mock.Anything, subscriptionIDs(subscriptions...), fixedNow).Return(nil)
}

func TestDispatchService_Dispatch_EndToEnd(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	transport := mockSvc.NewMockPushTransport(t)
	cfg := newTestConfig()
	clock := fixedClock{now: fixedNow}

	svc := NewDispatchService(
		cfg,
		newTestLogger(),
		validator.New(),
		subscriptionRepo,
		preferenceRepo,
		notificationRepo,
		NewRateLimiter(cfg, notificationRepo, clock),
		transport,
		clock,
	)

	ctx := context.Background()
	u1a := newSubscription("u1", "https://push.example.com/u1a")
	u1b := newSubscription("u1", "https://push.example.com/u1b")
	u2 := newSubscription("u2", "https://push.example.com/u2")

	transport.EXPECT().Ready().Return(nil)
	preferenceRepo.EXPECT().FindByUserIDs(ctx, []string{"u1", "u2"}).Return([]*entity.UserPreference{
		{UserID: "u1", PushNotificationsEnabled: true},
		{UserID: "u2", PushNotificationsEnabled: true, NotificationTopics: map[string]bool{"match": true}},
	}, nil)
	subscriptionRepo.EXPECT().FindByUserIDs(ctx, []string{"u1", "u2"}).
		Return([]*entity.PushSubscription{u1a, u1b, u2}, nil)
	notificationRepo.EXPECT().CreateRecord(ctx, mock.MatchedBy(func(r *entity.NotificationRecord) bool {
		return r.UserID == "caller" &&
			slices.Equal(r.RecipientIDs, []string{"u1", "u2"}) &&
			r.Title == "Game start" &&
			r.SentAt.Equal(fixedNow)
	})).Return(nil).Once()
	subscriptionRepo.EXPECT().TouchLastUsed(ctx, []uuid.UUID{u1a.ID, u1b.ID, u2.ID}, fixedNow).Return(nil).Once()
	notificationRepo.EXPECT().FindRecentLogs(ctx, []string{"u1", "u2"}, fixedNow.Add(-24*time.Hour)).Return(nil, nil)

	for _, s := range []*entity.PushSubscription{u1a, u1b, u2} {
		transport.EXPECT().Send(mock.Anything, endpointIs(s.Endpoint), mock.MatchedBy(func(m *service.PushMessage) bool {
			return m.Title == "Game start" && m.Body == "Your match begins now"
		})).Return(service.PushOutcome{Kind: service.PushDelivered, StatusCode: 201}).Once()
	}

	notificationRepo.EXPECT().BatchCreateLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
		if len(logs) != 2 {
			return false
		}
		counts := map[string]int{}
		for _, l := range logs {
			if l.RateLimited || l.FailureCount != 0 || l.Topic != "match" {
				return false
			}
			counts[l.UserID] = l.SuccessCount
		}

		return counts["u1"] == 2 && counts["u2"] == 1
	})).Return(nil).Once()

	result, err := svc.Dispatch(ctx, "caller", gameStartRequest("u1", "u2"))

	require.NoError(t, err)
	assert.Equal(t, "Sent push notifications to 3 of 3 devices", result.Message)
	assert.Equal(t, usecase.DeliveryResults{Total: 3, Successful: 3, Failed: 0}, result.Results)
}

func TestDispatchService_Dispatch_TransportNotConfigured(t *testing.T) {
	svc, m := createTestDispatchService(t)

	m.transport.EXPECT().Ready().Return(errors.New("vapid keys missing"))

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrServerConfiguration)
}

func TestDispatchService_Dispatch_InvalidRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         *entity.NotificationRequest
		wantDetails []string
	}{
		{
			name:        "nil body",
			req:         nil,
			wantDetails: []string{"request body is required"},
		},
		{
			name:        "no targets",
			req:         &entity.NotificationRequest{Title: "t", Body: "b"},
			wantDetails: []string{"userIds is required"},
		},
		{
			name:        "missing title and body",
			req:         &entity.NotificationRequest{UserIDs: []string{"u1"}},
			wantDetails: []string{"title is required", "body is required"},
		},
		{
			name:        "blank target",
			req:         &entity.NotificationRequest{UserIDs: []string{"u1", ""}, Title: "t", Body: "b"},
			wantDetails: []string{"userIds[1] is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createTestDispatchService(t)
			m.transport.EXPECT().Ready().Return(nil)

			_, err := svc.Dispatch(context.Background(), "caller", tt.req)

			require.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
			appErr, ok := err.(domainerrors.AppError)
			require.True(t, ok)
			for _, want := range tt.wantDetails {
				assert.Contains(t, appErr.Details(), want)
			}
		})
	}
}

func TestDispatchService_Dispatch_SingularUserIDAndDuplicates(t *testing.T) {
	svc, m := createTestDispatchService(t)
	ctx := context.Background()

	m.transport.EXPECT().Ready().Return(nil)
	m.preferenceRepo.EXPECT().FindByUserIDs(ctx, []string{"u1"}).Return(nil, nil)
	m.subscriptionRepo.EXPECT().FindByUserIDs(ctx, []string{"u1"}).Return(nil, nil)

	result, err := svc.Dispatch(ctx, "caller", &entity.NotificationRequest{UserID: "u1", Title: "t", Body: "b"})
	require.NoError(t, err)
	assert.Equal(t, msgNoSubscriptions, result.Message)

	svc, m = createTestDispatchService(t)
	m.transport.EXPECT().Ready().Return(nil)
	m.preferenceRepo.EXPECT().FindByUserIDs(ctx, []string{"u1", "u2"}).Return(nil, nil)
	m.subscriptionRepo.EXPECT().FindByUserIDs(ctx, []string{"u1", "u2"}).Return(nil, nil)

	_, err = svc.Dispatch(ctx, "caller", &entity.NotificationRequest{UserIDs: []string{"u1", "u2", "u1"}, Title: "t", Body: "b"})
	require.NoError(t, err)
}

func TestDispatchService_Dispatch_MissingPreferenceIsEnabled(t *testing.T) {
	svc, m := createTestDispatchService(t)
	sub := newSubscription("u1", "https://push.example.com/u1")

	expectPipelineUntilLimiter(m, []string{"u1"}, []*entity.PushSubscription{sub})
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(in *usecase.EvaluateInput) bool {
		return slices.Equal(in.UserIDs, []string{"u1"}) && len(in.Overrides) == 0
	})).Return(map[string]*usecase.Decision{"u1": sendDecision("Game start", "Your match begins now")}, nil)
	m.transport.EXPECT().Send(mock.Anything, sub, mock.Anything).Return(service.PushOutcome{Kind: service.PushDelivered})
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Results.Successful)
}

func TestDispatchService_Dispatch_PreferenceFiltering(t *testing.T) {
	tests := []struct {
		name       string
		preference *entity.UserPreference
		topic      string
	}{
		{
			name: "topic opted out",
			preference: &entity.UserPreference{
				UserID:                   "u1",
				PushNotificationsEnabled: true,
				NotificationTopics:       map[string]bool{"promo": false},
			},
			topic: "promo",
		},
		{
			name:       "push disabled",
			preference: &entity.UserPreference{UserID: "u1", PushNotificationsEnabled: false},
			topic:      "match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createTestDispatchService(t)

			m.transport.EXPECT().Ready().Return(nil)
			m.preferenceRepo.EXPECT().FindByUserIDs(mock.Anything, []string{"u1"}).
				Return([]*entity.UserPreference{tt.preference}, nil)

			result, err := svc.Dispatch(context.Background(), "caller", &entity.NotificationRequest{
				UserIDs: []string{"u1"},
				Title:   "Weekend sale",
				Body:    "50% off skins",
				Topic:   tt.topic,
			})

			require.NoError(t, err)
			assert.Equal(t, msgNoRecipients, result.Message)
			assert.Equal(t, usecase.DeliveryResults{}, result.Results)
		})
	}
}

func TestDispatchService_Dispatch_OverridesPassedToLimiter(t *testing.T) {
	svc, m := createTestDispatchService(t)
	sub := newSubscription("u1", "https://push.example.com/u1")
	override := &entity.RateLimitOverride{MaxPerDay: intPtr(3)}

	m.transport.EXPECT().Ready().Return(nil)
	m.preferenceRepo.EXPECT().FindByUserIDs(mock.Anything, []string{"u1"}).Return([]*entity.UserPreference{
		{UserID: "u1", PushNotificationsEnabled: true, RateLimit: override},
	}, nil)
	m.subscriptionRepo.EXPECT().FindByUserIDs(mock.Anything, []string{"u1"}).Return([]*entity.PushSubscription{sub}, nil)
	m.notificationRepo.EXPECT().CreateRecord(mock.Anything, mock.Anything).Return(nil)
	m.subscriptionRepo.EXPECT().TouchLastUsed(mock.Anything, mock.Anything, fixedNow).Return(nil)
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(in *usecase.EvaluateInput) bool {
		return in.Overrides["u1"] == override && in.Topic == "match"
	})).Return(map[string]*usecase.Decision{"u1": sendDecision("Game start", "Your match begins now")}, nil)
	m.transport.EXPECT().Send(mock.Anything, sub, mock.Anything).Return(service.PushOutcome{Kind: service.PushDelivered})
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	require.NoError(t, err)
}

func TestDispatchService_Dispatch_AllRateLimited(t *testing.T) {
	svc, m := createTestDispatchService(t)
	subs := []*entity.PushSubscription{
		newSubscription("u1", "https://push.example.com/u1"),
		newSubscription("u2", "https://push.example.com/u2"),
	}

	expectPipelineUntilLimiter(m, []string{"u1", "u2"}, subs)
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).Return(map[string]*usecase.Decision{
		"u1": {ShouldSend: false, Title: "Game start", Body: "Your match begins now"},
		"u2": {ShouldSend: false, Title: "Game start", Body: "Your match begins now"},
	}, nil)
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
		if len(logs) != 2 {
			return false
		}
		for _, l := range logs {
			if !l.RateLimited || l.SuccessCount != 0 || l.FailureCount != 0 {
				return false
			}
		}

		return true
	})).Return(nil).Once()

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1", "u2"))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
	m.transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_PartiallyRateLimited(t *testing.T) {
	svc, m := createTestDispatchService(t)
	limited := newSubscription("u1", "https://push.example.com/u1")
	allowed := newSubscription("u2", "https://push.example.com/u2")

	expectPipelineUntilLimiter(m, []string{"u1", "u2"}, []*entity.PushSubscription{limited, allowed})
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).Return(map[string]*usecase.Decision{
		"u1": {ShouldSend: false},
		"u2": sendDecision("Game start", "Your match begins now"),
	}, nil)
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
		return len(logs) == 1 && logs[0].UserID == "u1" && logs[0].RateLimited
	})).Return(nil).Once()
	m.transport.EXPECT().Send(mock.Anything, allowed, mock.Anything).Return(service.PushOutcome{Kind: service.PushDelivered}).Once()
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
		return len(logs) == 1 && logs[0].UserID == "u2" && !logs[0].RateLimited && logs[0].SuccessCount == 1
	})).Return(nil).Once()

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1", "u2"))

	require.NoError(t, err)
	assert.Equal(t, usecase.DeliveryResults{Total: 1, Successful: 1}, result.Results)
}

func TestDispatchService_Dispatch_PartialFailureIsolation(t *testing.T) {
	svc, m := createTestDispatchService(t)
	subs := []*entity.PushSubscription{
		newSubscription("u1", "https://push.example.com/1"),
		newSubscription("u1", "https://push.example.com/2"),
		newSubscription("u1", "https://push.example.com/3"),
	}

	expectPipelineUntilLimiter(m, []string{"u1"}, subs)
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(map[string]*usecase.Decision{"u1": sendDecision("Game start", "Your match begins now")}, nil)
	m.transport.EXPECT().Send(mock.Anything, endpointIs(subs[0].Endpoint), mock.Anything).
		Return(service.PushOutcome{Kind: service.PushDelivered}).Once()
	m.transport.EXPECT().Send(mock.Anything, endpointIs(subs[1].Endpoint), mock.Anything).
		Return(service.PushOutcome{Kind: service.PushFailed, StatusCode: 500, Detail: "upstream error"}).Once()
	m.transport.EXPECT().Send(mock.Anything, endpointIs(subs[2].Endpoint), mock.Anything).
		Return(service.PushOutcome{Kind: service.PushDelivered}).Once()
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
		return len(logs) == 1 && logs[0].SuccessCount == 2 && logs[0].FailureCount == 1
	})).Return(nil)

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	require.NoError(t, err)
	assert.Equal(t, "Sent push notifications to 2 of 3 devices", result.Message)
	assert.Equal(t, usecase.DeliveryResults{Total: 3, Successful: 2, Failed: 1}, result.Results)
	m.subscriptionRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_GoneEndpointPruned(t *testing.T) {
	svc, m := createTestDispatchService(t)
	live := newSubscription("u1", "https://push.example.com/live")
	gone := newSubscription("u1", "https://push.example.com/gone")

	expectPipelineUntilLimiter(m, []string{"u1"}, []*entity.PushSubscription{live, gone})
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(map[string]*usecase.Decision{"u1": sendDecision("Game start", "Your match begins now")}, nil)
	m.transport.EXPECT().Send(mock.Anything, live, mock.Anything).Return(service.PushOutcome{Kind: service.PushDelivered})
	m.transport.EXPECT().Send(mock.Anything, gone, mock.Anything).Return(service.PushOutcome{Kind: service.PushGone, StatusCode: 410})
	m.subscriptionRepo.EXPECT().DeleteByID(mock.Anything, gone.ID).Return(nil).Once()
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	require.NoError(t, err)
	assert.Equal(t, usecase.DeliveryResults{Total: 2, Successful: 1, Failed: 1}, result.Results)
}

func TestDispatchService_Dispatch_GoneDeleteErrorIsNotPropagated(t *testing.T) {
	svc, m := createTestDispatchService(t)
	gone := newSubscription("u1", "https://push.example.com/gone")

	expectPipelineUntilLimiter(m, []string{"u1"}, []*entity.PushSubscription{gone})
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(map[string]*usecase.Decision{"u1": sendDecision("Game start", "Your match begins now")}, nil)
	m.transport.EXPECT().Send(mock.Anything, gone, mock.Anything).Return(service.PushOutcome{Kind: service.PushGone, StatusCode: 404})
	m.subscriptionRepo.EXPECT().DeleteByID(mock.Anything, gone.ID).Return(errors.New("deadlock detected"))
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	require.NoError(t, err)
	assert.Equal(t, usecase.DeliveryResults{Total: 1, Failed: 1}, result.Results)
}

func TestDispatchService_Dispatch_UsesLimiterContentAndDefaults(t *testing.T) {
	svc, m := createTestDispatchService(t)
	sub := newSubscription("u1", "https://push.example.com/u1")
	combined := &usecase.Decision{
		ShouldSend:   true,
		Title:        "Alice: 3 new updates",
		Body:         "sent you a gift\n\n+2 more notifications",
		Data:         map[string]any{"combined": true, "combineCount": 3},
		Combined:     true,
		CombineCount: 3,
	}

	expectPipelineUntilLimiter(m, []string{"u1"}, []*entity.PushSubscription{sub})
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).Return(map[string]*usecase.Decision{"u1": combined}, nil)

	var sent *service.PushMessage
	m.transport.EXPECT().Send(mock.Anything, sub, mock.Anything).
		Run(func(_ context.Context, _ *entity.PushSubscription, message *service.PushMessage) {
			sent = message
		}).
		Return(service.PushOutcome{Kind: service.PushDelivered})
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
		return len(logs) == 1 && logs[0].Title == "Alice: 3 new updates"
	})).Return(nil)

	_, err := svc.Dispatch(context.Background(), "caller", &entity.NotificationRequest{
		UserIDs: []string{"u1"},
		Title:   "Alice: sent you a gift",
		Body:    "sent you a gift",
		Topic:   "gift",
		Tag:     "gift",
		Actions: []entity.NotificationAction{{Action: "open", Title: "Open"}},
	})

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "Alice: 3 new updates", sent.Title)
	assert.Equal(t, "sent you a gift\n\n+2 more notifications", sent.Body)
	assert.Equal(t, defaultIcon, sent.Icon)
	assert.Equal(t, defaultBadge, sent.Badge)
	assert.Equal(t, "/", sent.URL)
	assert.Equal(t, "gift", sent.Tag)
	assert.Len(t, sent.Actions, 1)
	assert.Equal(t, fixedNow.UnixMilli(), sent.Timestamp)
	assert.Equal(t, map[string]any{"combined": true, "combineCount": 3, "url": "/"}, sent.Data)
	assert.NotContains(t, combined.Data, "url")
}

func TestDispatchService_Dispatch_SendHasTimeout(t *testing.T) {
	svc, m := createTestDispatchService(t)
	sub := newSubscription("u1", "https://push.example.com/u1")

	expectPipelineUntilLimiter(m, []string{"u1"}, []*entity.PushSubscription{sub})
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(map[string]*usecase.Decision{"u1": sendDecision("t", "b")}, nil)
	m.transport.EXPECT().Send(mock.Anything, sub, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *entity.PushSubscription, _ *service.PushMessage) service.PushOutcome {
			if _, ok := ctx.Deadline(); !ok {
				return service.PushOutcome{Kind: service.PushDelivered}
			}

			return service.PushOutcome{Kind: service.PushFailed, Detail: context.DeadlineExceeded.Error()}
		})
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Results.Failed)
}

func TestDispatchService_Dispatch_TransportPanicCountsAsFailure(t *testing.T) {
	svc, m := createTestDispatchService(t)
	bad := newSubscription("u1", "https://push.example.com/bad")
	good := newSubscription("u1", "https://push.example.com/good")

	expectPipelineUntilLimiter(m, []string{"u1"}, []*entity.PushSubscription{bad, good})
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(map[string]*usecase.Decision{"u1": sendDecision("t", "b")}, nil)
	m.transport.EXPECT().Send(mock.Anything, bad, mock.Anything).
		RunAndReturn(func(context.Context, *entity.PushSubscription, *service.PushMessage) service.PushOutcome {
			panic("malformed key")
		})
	m.transport.EXPECT().Send(mock.Anything, good, mock.Anything).Return(service.PushOutcome{Kind: service.PushDelivered})
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	require.NoError(t, err)
	assert.Equal(t, usecase.DeliveryResults{Total: 2, Successful: 1, Failed: 1}, result.Results)
}

func TestDispatchService_Dispatch_TouchFailureDoesNotStopDelivery(t *testing.T) {
	svc, m := createTestDispatchService(t)
	sub := newSubscription("u1", "https://push.example.com/u1")

	m.transport.EXPECT().Ready().Return(nil)
	m.preferenceRepo.EXPECT().FindByUserIDs(mock.Anything, []string{"u1"}).Return(nil, nil)
	m.subscriptionRepo.EXPECT().FindByUserIDs(mock.Anything, []string{"u1"}).Return([]*entity.PushSubscription{sub}, nil)
	m.notificationRepo.EXPECT().CreateRecord(mock.Anything, mock.Anything).Return(nil)
	m.subscriptionRepo.EXPECT().TouchLastUsed(mock.Anything, []uuid.UUID{sub.ID}, fixedNow).Return(errors.New("timeout"))
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(map[string]*usecase.Decision{"u1": sendDecision("t", "b")}, nil)
	m.transport.EXPECT().Send(mock.Anything, sub, mock.Anything).Return(service.PushOutcome{Kind: service.PushDelivered})
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Results.Successful)
}

func TestDispatchService_Dispatch_StoreErrors(t *testing.T) {
	t.Run("preferences", func(t *testing.T) {
		svc, m := createTestDispatchService(t)
		m.transport.EXPECT().Ready().Return(nil)
		m.preferenceRepo.EXPECT().FindByUserIDs(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))
		require.Error(t, err)
	})

	t.Run("record insert", func(t *testing.T) {
		svc, m := createTestDispatchService(t)
		m.transport.EXPECT().Ready().Return(nil)
		m.preferenceRepo.EXPECT().FindByUserIDs(mock.Anything, mock.Anything).Return(nil, nil)
		m.subscriptionRepo.EXPECT().FindByUserIDs(mock.Anything, mock.Anything).
			Return([]*entity.PushSubscription{newSubscription("u1", "https://push.example.com/u1")}, nil)
		m.notificationRepo.EXPECT().CreateRecord(mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create notification record")
	})

	t.Run("limiter", func(t *testing.T) {
		svc, m := createTestDispatchService(t)
		expectPipelineUntilLimiter(m, []string{"u1"}, []*entity.PushSubscription{newSubscription("u1", "https://push.example.com/u1")})
		m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))
		require.Error(t, err)
	})
}

func newUserSubscriptions(userID string, n int) []*entity.PushSubscription {
	subs := make([]*entity.PushSubscription, 0, n)
	for i := range n {
		subs = append(subs, newSubscription(userID, fmt.Sprintf("https://push.example.com/%s/%d", userID, i)))
	}

	return subs
}

// Every send blocks until all of them have started, so sequential delivery
// can only finish through the fallback and reports failures.
func TestDispatchService_Dispatch_FansOutConcurrently(t *testing.T) {
	const n = 3
	svc, m := createTestDispatchService(t)
	subs := newUserSubscriptions("u1", n)

	expectPipelineUntilLimiter(m, []string{"u1"}, subs)
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(map[string]*usecase.Decision{"u1": sendDecision("Game start", "Your match begins now")}, nil)

	var started sync.WaitGroup
	started.Add(n)
	allStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(allStarted)
	}()

	m.transport.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.PushSubscription, *service.PushMessage) service.PushOutcome {
			started.Done()
			select {
			case <-allStarted:
				return service.PushOutcome{Kind: service.PushDelivered, StatusCode: 201}
			case <-time.After(time.Second):
				return service.PushOutcome{Kind: service.PushFailed, Detail: "sends did not overlap"}
			}
		}).Times(n)
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.Anything).Return(nil)

	start := time.Now()
	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	require.NoError(t, err)
	assert.Equal(t, usecase.DeliveryResults{Total: n, Successful: n}, result.Results)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDispatchService_Dispatch_RespectsMaxParallel(t *testing.T) {
	const n = 6
	cfg := newTestConfig()
	cfg.Dispatch.MaxParallel = 2
	svc, m := createTestDispatchServiceWithConfig(t, cfg)
	subs := newUserSubscriptions("u1", n)

	expectPipelineUntilLimiter(m, []string{"u1"}, subs)
	m.rateLimiter.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(map[string]*usecase.Decision{"u1": sendDecision("Game start", "Your match begins now")}, nil)

	var inFlight, peak atomic.Int32
	m.transport.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.PushSubscription, *service.PushMessage) service.PushOutcome {
			current := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				seen := peak.Load()
				if current <= seen || peak.CompareAndSwap(seen, current) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)

			return service.PushOutcome{Kind: service.PushDelivered}
		}).Times(n)
	m.notificationRepo.EXPECT().BatchCreateLogs(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Dispatch(context.Background(), "caller", gameStartRequest("u1"))

	require.NoError(t, err)
	assert.Equal(t, n, result.Results.Successful)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Positive(t, peak.Load())
}
