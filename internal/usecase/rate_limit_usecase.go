package usecase

import (
	"context"

	"pushsvc/internal/domain/entity"
)

// RateLimitSettings are the effective limits for one user.
type RateLimitSettings struct {
	MaxPerDay               int
	CooldownMinutes         int
	CombineThresholdSeconds int
}

// EvaluateInput describes a candidate notification for a set of recipients.
type EvaluateInput struct {
	UserIDs   []string
	Title     string
	Body      string
	Topic     string
	Data      map[string]any
	Overrides map[string]*entity.RateLimitOverride // keyed by user ID, may be nil
}

// Decision is the rate limiter verdict for one recipient.
type Decision struct {
	ShouldSend   bool
	Title        string
	Body         string
	Data         map[string]any
	Combined     bool
	CombineCount int
}

// RateLimiter decides whether and with what content a notification is sent
type RateLimiter interface {
	// Evaluate returns one decision per user in the input.
	Evaluate(ctx context.Context, in *EvaluateInput) (map[string]*Decision, error)
}
