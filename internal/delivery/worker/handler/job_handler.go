package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pushsvc/config"
	deliverycontext "pushsvc/internal/delivery/context"
	"pushsvc/internal/domain/constants"
	domainerrors "pushsvc/internal/domain/errors"
	"pushsvc/internal/domain/service"
	"pushsvc/internal/infra/pubsub"
	"pushsvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests
type TokenVerifier func(req *http.Request) error

// JobHandler handles Pub/Sub push messages carrying dispatch jobs
type JobHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	dispatchUC     usecase.DispatchUsecase
}

// JobHandlerParams holds dependencies for the JobHandler
type JobHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

// NewJobHandler creates a new Pub/Sub push handler
func NewJobHandler(params JobHandlerParams) *JobHandler {
	// Only Google Pub/Sub signs push requests, and never in local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &JobHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		dispatchUC:     params.DispatchUC,
	}
}

// HandlePush runs the dispatch carried by a Pub/Sub push message.
// 503 asks Pub/Sub to redeliver; any 2xx acknowledges the message.
func (h *JobHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Malformed messages are acknowledged, redelivery cannot fix them
	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	job, err := envelope.DecodeDispatchJob()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode dispatch job",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := resolveRequestID(ctx, job)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("job_id", job.JobID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithUserID(ctx, job.CallerID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing dispatch job",
		slog.String("caller_id", job.CallerID),
		slog.Int("recipient_count", len(job.Request.UserIDs)),
	)

	result, err := h.dispatchUC.Dispatch(ctx, job.CallerID, job.Request)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to process dispatch job",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Dispatch job processed",
		slog.String("message", result.Message),
		slog.Int("total", result.Results.Total),
		slog.Int("successful", result.Results.Successful),
		slog.Int("failed", result.Results.Failed),
	)

	return c.NoContent(http.StatusOK)
}

// resolveRequestID prefers the id carried by the job, then the inbound header
func resolveRequestID(ctx context.Context, job *service.DispatchJob) string {
	if job.RequestID != "" {
		return job.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// isRetryable reports whether redelivery could succeed. Client errors such as
// invalid input or a rate limit rejection are final, and so is missing VAPID
// configuration, which needs a redeploy rather than a retry.
//
// A retried job runs the whole dispatch again. If it failed after the history
// record was written, the retry writes a second NotificationRecord and touches
// last_used again.
func isRetryable(err error) bool {
	if errors.Is(err, domainerrors.ErrServerConfiguration) {
		return false
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
