package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"pushsvc/internal/delivery/api/middleware"
	"pushsvc/internal/delivery/api/response"
	deliverycontext "pushsvc/internal/delivery/context"
	"pushsvc/internal/domain/constants"
	"pushsvc/internal/domain/entity"
	domainerrors "pushsvc/internal/domain/errors"
	"pushsvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	msgServiceRunning   = "Push notification service is running"
	msgCleanupCompleted = "Cleanup process completed"
	msgJobQueued        = "Notification queued"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	DispatchUC     usecase.DispatchUsecase
	CleanupUC      usecase.CleanupUsecase
	JobUC          usecase.JobUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *slog.Logger
}

// PushHandler serves the notification send endpoint
type PushHandler struct {
	dispatchUC usecase.DispatchUsecase
	cleanupUC  usecase.CleanupUsecase
	jobUC      usecase.JobUsecase
	logger     *slog.Logger

	authenticatedSend echo.HandlerFunc
}

// NewPushHandler is the constructor for PushHandler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		dispatchUC: params.DispatchUC,
		cleanupUC:  params.CleanupUC,
		jobUC:      params.JobUC,
		logger:     params.Logger,
	}
	h.authenticatedSend = params.AuthMiddleware.Authenticate(h.send)

	return h
}

// Handle routes every method on the push endpoint.
// Only a plain POST requires a bearer token.
func (h *PushHandler) Handle(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodOptions:
		return c.NoContent(http.StatusNoContent)
	case http.MethodGet:
		return response.Message(c, http.StatusOK, msgServiceRunning)
	case http.MethodPost:
		if isCleanupRequest(c.Request()) {
			return h.cleanup(c)
		}

		return h.authenticatedSend(c)
	default:
		return response.MethodNotAllowed(c)
	}
}

// Enqueue queues a send for the worker. It must run behind AuthMiddleware.
func (h *PushHandler) Enqueue(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	req, err := bindNotificationRequest(c)
	if err != nil {
		return err
	}

	jobID, err := h.jobUC.Enqueue(c.Request().Context(), callerID, deliverycontext.GetRequestID(c), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, response.JobResponse{
		Message: msgJobQueued,
		JobID:   jobID,
	})
}

func (h *PushHandler) send(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	req, err := bindNotificationRequest(c)
	if err != nil {
		return err
	}

	result, err := h.dispatchUC.Dispatch(c.Request().Context(), callerID, req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *PushHandler) cleanup(c echo.Context) error {
	ctx := c.Request().Context()
	result := h.cleanupUC.CleanupStaleSubscriptions(ctx)

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Stale subscription cleanup requested",
		slog.Int("found", result.Found),
		slog.Int("deleted", result.Deleted),
		slog.Int("failed_batches", result.FailedBatches),
	)

	return response.Message(c, http.StatusOK, msgCleanupCompleted)
}

func isCleanupRequest(r *http.Request) bool {
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(constants.HeaderCleanupRequest)), "true")
}

func bindNotificationRequest(c echo.Context) (*entity.NotificationRequest, error) {
	var req entity.NotificationRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("request body must be a JSON object")
	}

	return &req, nil
}
