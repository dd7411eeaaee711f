package usecase

import (
	"context"

	"pushsvc/internal/domain/entity"
)

// DeliveryResults counts per-subscription outcomes of one dispatch.
type DeliveryResults struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// DispatchResult is returned for every accepted dispatch, including partial
// and total delivery failure.
type DispatchResult struct {
	Message string          `json:"message"`
	Results DeliveryResults `json:"results"`
}

// DispatchUsecase defines the notification send pipeline
type DispatchUsecase interface {
	// Dispatch filters recipients, consults the rate limiter and delivers to every
	// subscription of the allowed recipients. callerID is the authenticated sender.
	Dispatch(ctx context.Context, callerID string, req *entity.NotificationRequest) (*DispatchResult, error)
}
