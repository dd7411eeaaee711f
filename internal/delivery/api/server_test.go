package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pushsvc/config"
	apimiddleware "pushsvc/internal/delivery/api/middleware"
	"pushsvc/internal/delivery/api/router"
	"pushsvc/internal/delivery/api/router/handler"
	deliverycontext "pushsvc/internal/delivery/context"
	"pushsvc/internal/domain/entity"
	domainerrors "pushsvc/internal/domain/errors"
	"pushsvc/internal/errors"
	"pushsvc/internal/infra/clock"
	"pushsvc/internal/infra/validator"
	mockRepo "pushsvc/internal/mocks/repository"
	mockService "pushsvc/internal/mocks/service"
	mockUsecase "pushsvc/internal/mocks/usecase"
	"pushsvc/internal/usecase"
	"pushsvc/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const validToken = "valid-token"

type apiFixture struct {
	echo         *echo.Echo
	identity     *mockService.MockIdentityProvider
	dispatchUC   *mockUsecase.MockDispatchUsecase
	cleanupUC    *mockUsecase.MockCleanupUsecase
	jobUC        *mockUsecase.MockJobUsecase
	subscription *mockUsecase.MockSubscriptionUsecase
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Dispatch.SendTimeout = 5 * time.Second
	cfg.Dispatch.MaxParallel = 4
	cfg.RateLimit = config.RateLimitConfig{MaxPerDay: 20, CooldownMinutes: 5, CombineThresholdSeconds: 60}

	return cfg
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildEcho(t *testing.T, identity *mockService.MockIdentityProvider, dispatchUC usecase.DispatchUsecase, f *apiFixture) *echo.Echo {
	t.Helper()

	logger := newTestLogger()
	auth := apimiddleware.NewAuthMiddleware(identity, logger)

	return newEcho(ServerParams{
		Cfg:       newTestConfig(),
		Logger:    logger,
		Validator: validator.New(),
		RouterParams: router.RouterParams{
			PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
				DispatchUC:     dispatchUC,
				CleanupUC:      f.cleanupUC,
				JobUC:          f.jobUC,
				AuthMiddleware: auth,
				Logger:         logger,
			}),
			SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{
				SubscriptionUC: f.subscription,
				Logger:         logger,
			}),
			AuthMiddleware: auth,
		},
	})
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		identity:     mockService.NewMockIdentityProvider(t),
		dispatchUC:   mockUsecase.NewMockDispatchUsecase(t),
		cleanupUC:    mockUsecase.NewMockCleanupUsecase(t),
		jobUC:        mockUsecase.NewMockJobUsecase(t),
		subscription: mockUsecase.NewMockSubscriptionUsecase(t),
	}
	f.echo = buildEcho(t, f.identity, f.dispatchUC, f)

	return f
}

func (f *apiFixture) expectAuthenticated(userID string) {
	f.identity.EXPECT().VerifyToken(mock.Anything, validToken).Return(userID, nil)
}

func doRequest(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func bearer() map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + validToken}
}

func TestPushNotifications_Get(t *testing.T) {
	f := newAPIFixture(t)

	rec := doRequest(f.echo, http.MethodGet, "/push-notifications", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Push notification service is running", decodeBody(t, rec)["message"])
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestPushNotifications_Options(t *testing.T) {
	f := newAPIFixture(t)

	rec := doRequest(f.echo, http.MethodOptions, "/push-notifications", "", map[string]string{
		echo.HeaderOrigin:                     "https://app.example.com",
		echo.HeaderAccessControlRequestMethod: http.MethodPost,
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods))
}

func TestPushNotifications_MethodNotAllowed(t *testing.T) {
	f := newAPIFixture(t)

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			rec := doRequest(f.echo, method, "/push-notifications", "", bearer())

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, map[string]any{"error": "Method not allowed"}, decodeBody(t, rec))
		})
	}
}

func TestPushNotifications_Cleanup(t *testing.T) {
	f := newAPIFixture(t)
	f.cleanupUC.EXPECT().CleanupStaleSubscriptions(mock.Anything).
		Return(&usecase.CleanupResult{Found: 12, Deleted: 12}).Once()

	rec := doRequest(f.echo, http.MethodPost, "/push-notifications", "", map[string]string{
		"X-Cleanup-Request": "true",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "Cleanup process completed"}, decodeBody(t, rec))
}

func TestPushNotifications_Send(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated("sender-1")
	f.dispatchUC.EXPECT().
		Dispatch(mock.Anything, "sender-1", mock.MatchedBy(func(req *entity.NotificationRequest) bool {
			return len(req.UserIDs) == 2 && req.Title == "Game start" && req.Topic == "match"
		})).
		Return(&usecase.DispatchResult{
			Message: "Sent push notifications to 3 of 3 devices",
			Results: usecase.DeliveryResults{Total: 3, Successful: 3},
		}, nil).Once()

	rec := doRequest(f.echo, http.MethodPost, "/push-notifications",
		`{"userIds":["u1","u2"],"title":"Game start","body":"Your match begins now","topic":"match"}`, bearer())

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{
		"message": "Sent push notifications to 3 of 3 devices",
		"results": map[string]any{"total": float64(3), "successful": float64(3), "failed": float64(0)},
	}, decodeBody(t, rec))
}

func TestPushNotifications_SendErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantDetails string
	}{
		{
			name:        "invalid request keeps field details",
			err:         domainerrors.ErrInvalidRequest.WithDetails("title is required"),
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid request",
			wantDetails: "title is required",
		},
		{
			name:       "rate limited",
			err:        domainerrors.ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
			wantError:  "Rate limit exceeded",
		},
		{
			name:       "server configuration is generic",
			err:        domainerrors.ErrServerConfiguration,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
		{
			name:       "unknown errors never leak",
			err:        errors.New("pq: connection refused to 10.0.0.5"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.expectAuthenticated("sender-1")
			f.dispatchUC.EXPECT().Dispatch(mock.Anything, "sender-1", mock.Anything).Return(nil, tt.err).Once()

			rec := doRequest(f.echo, http.MethodPost, "/push-notifications", `{"userIds":["u1"],"body":"x"}`, bearer())

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantError, body["error"])
			if tt.wantDetails == "" {
				assert.NotContains(t, body, "details")
			} else {
				assert.Equal(t, tt.wantDetails, body["details"])
			}
		})
	}
}

func TestPushNotifications_MalformedBody(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated("sender-1")

	rec := doRequest(f.echo, http.MethodPost, "/push-notifications", `{"userIds":`, bearer())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request", decodeBody(t, rec)["error"])
}

// A rejected credential must stop the request before any store or transport access.
func TestPushNotifications_UnauthorizedTouchesNothing(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		setup   func(identity *mockService.MockIdentityProvider)
	}{
		{name: "missing header"},
		{name: "wrong scheme", headers: map[string]string{echo.HeaderAuthorization: "Basic dXNlcjpwYXNz"}},
		{name: "empty bearer", headers: map[string]string{echo.HeaderAuthorization: "Bearer  "}},
		{
			name:    "rejected token",
			headers: map[string]string{echo.HeaderAuthorization: "Bearer forged"},
			setup: func(identity *mockService.MockIdentityProvider) {
				identity.EXPECT().VerifyToken(mock.Anything, "forged").Return("", errors.New("signature is invalid")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := mockService.NewMockIdentityProvider(t)
			if tt.setup != nil {
				tt.setup(identity)
			}

			// Real pipeline over mocks without expectations: any call fails the test
			subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
			preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
			notificationRepo := mockRepo.NewMockNotificationRepository(t)
			transport := mockService.NewMockPushTransport(t)
			cfg := newTestConfig()
			logger := newTestLogger()
			dispatchUC := impl.NewDispatchService(cfg, logger, validator.New(),
				subscriptionRepo, preferenceRepo, notificationRepo,
				impl.NewRateLimiter(cfg, notificationRepo, clock.New()),
				transport, clock.New(),
			)

			f := &apiFixture{
				cleanupUC:    mockUsecase.NewMockCleanupUsecase(t),
				jobUC:        mockUsecase.NewMockJobUsecase(t),
				subscription: mockUsecase.NewMockSubscriptionUsecase(t),
			}
			e := buildEcho(t, identity, dispatchUC, f)

			rec := doRequest(e, http.MethodPost, "/push-notifications",
				`{"userIds":["u1"],"title":"t","body":"b"}`, tt.headers)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, map[string]any{"error": "Unauthorized"}, decodeBody(t, rec))
		})
	}
}

func TestPushNotificationJobs_Enqueue(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated("sender-1")
	f.jobUC.EXPECT().
		Enqueue(mock.Anything, "sender-1", "req-42", mock.MatchedBy(func(req *entity.NotificationRequest) bool {
			return req.UserID == "u9" && req.Title == "Hi"
		})).
		Return("job-1", nil).Once()

	rec := doRequest(f.echo, http.MethodPost, "/push-notifications/jobs", `{"userId":"u9","title":"Hi","body":"there"}`, map[string]string{
		echo.HeaderAuthorization:         "Bearer " + validToken,
		deliverycontext.HeaderXRequestID: "req-42",
	})

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{"message": "Notification queued", "job_id": "job-1"}, decodeBody(t, rec))
}

func TestPushNotificationJobs_PublishFailure(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated("sender-1")
	f.jobUC.EXPECT().Enqueue(mock.Anything, "sender-1", mock.Anything, mock.Anything).
		Return("", domainerrors.ErrPublishFailed).Once()

	rec := doRequest(f.echo, http.MethodPost, "/push-notifications/jobs", `{"userId":"u9","title":"Hi","body":"there"}`, bearer())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Failed to queue notification", decodeBody(t, rec)["error"])
}

func TestPushSubscriptions(t *testing.T) {
	t.Run("subscribe", func(t *testing.T) {
		f := newAPIFixture(t)
		f.expectAuthenticated("u1")
		f.subscription.EXPECT().
			Subscribe(mock.Anything, "u1", &usecase.SubscribeInput{
				Endpoint: "https://push.example.com/abc",
				Keys:     usecase.SubscriptionKeys{P256dh: "pk", Auth: "secret"},
			}).
			Return(&entity.PushSubscription{UserID: "u1", Endpoint: "https://push.example.com/abc"}, nil).Once()

		rec := doRequest(f.echo, http.MethodPost, "/push-subscriptions",
			`{"endpoint":"https://push.example.com/abc","keys":{"p256dh":"pk","auth":"secret"}}`, bearer())

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "https://push.example.com/abc", decodeBody(t, rec)["endpoint"])
	})

	t.Run("list", func(t *testing.T) {
		f := newAPIFixture(t)
		f.expectAuthenticated("u1")
		f.subscription.EXPECT().ListSubscriptions(mock.Anything, "u1").
			Return([]*entity.PushSubscription{{UserID: "u1"}, {UserID: "u1"}}, nil).Once()

		rec := doRequest(f.echo, http.MethodGet, "/push-subscriptions", "", bearer())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec)["subscriptions"], 2)
	})

	t.Run("unsubscribe by query", func(t *testing.T) {
		f := newAPIFixture(t)
		f.expectAuthenticated("u1")
		f.subscription.EXPECT().Unsubscribe(mock.Anything, "u1", "https://push.example.com/abc").Return(nil).Once()

		rec := doRequest(f.echo, http.MethodDelete, "/push-subscriptions?endpoint=https%3A%2F%2Fpush.example.com%2Fabc", "", bearer())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unsubscribe unknown endpoint", func(t *testing.T) {
		f := newAPIFixture(t)
		f.expectAuthenticated("u1")
		f.subscription.EXPECT().Unsubscribe(mock.Anything, "u1", "https://push.example.com/zzz").
			Return(domainerrors.ErrSubscriptionNotFound).Once()

		rec := doRequest(f.echo, http.MethodDelete, "/push-subscriptions?endpoint=https%3A%2F%2Fpush.example.com%2Fzzz", "", bearer())

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("requires auth", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := doRequest(f.echo, http.MethodGet, "/push-subscriptions", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestVAPIDPublicKey(t *testing.T) {
	f := newAPIFixture(t)
	f.subscription.EXPECT().ApplicationServerKey().Return("BPublicKey").Once()

	rec := doRequest(f.echo, http.MethodGet, "/vapid-public-key", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"publicKey": "BPublicKey"}, decodeBody(t, rec))
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := doRequest(f.echo, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServer_RegistersShutdownHook(t *testing.T) {
	f := newAPIFixture(t)
	lc := fxtest.NewLifecycle(t)

	srv, err := NewServer(ServerParams{
		Lc:        lc,
		Cfg:       newTestConfig(),
		Logger:    newTestLogger(),
		Validator: validator.New(),
		RouterParams: router.RouterParams{
			PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
				DispatchUC:     f.dispatchUC,
				CleanupUC:      f.cleanupUC,
				JobUC:          f.jobUC,
				AuthMiddleware: apimiddleware.NewAuthMiddleware(f.identity, newTestLogger()),
				Logger:         newTestLogger(),
			}),
			SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{SubscriptionUC: f.subscription}),
			AuthMiddleware:      apimiddleware.NewAuthMiddleware(f.identity, newTestLogger()),
		},
	})

	require.NoError(t, err)
	require.NotNil(t, srv)
	lc.RequireStart().RequireStop()
}
