package handler

import (
	"log/slog"
	"net/http"

	"pushsvc/internal/delivery/api/middleware"
	"pushsvc/internal/delivery/api/response"
	domainerrors "pushsvc/internal/domain/errors"
	"pushsvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for push subscription handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// UnsubscribeRequest identifies the subscription to remove
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" query:"endpoint"`
}

// Subscribe registers the browser subscription for the caller
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req usecase.SubscribeInput
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails("request body must be a JSON object")
	}

	subscription, err := h.subscriptionUC.Subscribe(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, subscription)
}

// ListSubscriptions returns the caller's subscriptions
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	subscriptions, err := h.subscriptionUC.ListSubscriptions(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{"subscriptions": subscriptions})
}

// Unsubscribe removes one of the caller's subscriptions by endpoint
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails("endpoint is required")
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), userID, req.Endpoint); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// VAPIDPublicKey returns the application server key for PushManager.subscribe
func (h *SubscriptionHandler) VAPIDPublicKey(c echo.Context) error {
	key := h.subscriptionUC.ApplicationServerKey()
	if key == "" {
		return domainerrors.ErrServerConfiguration.WithDetails("vapid public key is not configured")
	}

	return response.Success(c, http.StatusOK, map[string]string{"publicKey": key})
}
