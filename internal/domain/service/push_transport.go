package service

import (
	"context"

	"pushsvc/internal/domain/entity"
)

// PushOutcomeKind tags the result of one delivery attempt.
type PushOutcomeKind int

const (
	// PushDelivered means the push service accepted the message.
	PushDelivered PushOutcomeKind = iota
	// PushGone means the endpoint is permanently invalid and should be pruned.
	PushGone
	// PushFailed covers every other failure, timeouts included.
	PushFailed
)

// String returns a log-friendly name.
func (k PushOutcomeKind) String() string {
	switch k {
	case PushDelivered:
		return "delivered"
	case PushGone:
		return "gone"
	default:
		return "failed"
	}
}

// PushOutcome is the result of sending to a single subscription.
type PushOutcome struct {
	Kind       PushOutcomeKind
	StatusCode int    // HTTP status returned by the push service, 0 if none.
	Detail     string // Failure detail, empty on delivery.
}

// PushMessage is the JSON payload a service worker receives.
type PushMessage struct {
	Title     string                      `json:"title"`
	Body      string                      `json:"body"`
	Icon      string                      `json:"icon"`
	Badge     string                      `json:"badge"`
	Image     string                      `json:"image,omitempty"`
	URL       string                      `json:"url"`
	Tag       string                      `json:"tag,omitempty"`
	Data      map[string]any              `json:"data"`
	Actions   []entity.NotificationAction `json:"actions,omitempty"`
	Timestamp int64                       `json:"timestamp"`
}

// PushTransport defines the interface for encrypted Web Push delivery.
type PushTransport interface {
	// Ready reports whether signing keys and subject are configured.
	Ready() error

	// PublicKey returns the application server key clients subscribe with.
	PublicKey() string

	// Send delivers one message to one subscription. It never panics on transport
	// errors; every failure is reported through the outcome.
	Send(ctx context.Context, subscription *entity.PushSubscription, message *PushMessage) PushOutcome
}
