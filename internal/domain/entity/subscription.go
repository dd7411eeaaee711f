// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription represents a browser or device registered for Web Push delivery.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the subscription.
	UserID    string    `json:"user_id"`    // The ID of the user who owns this subscription.
	Endpoint  string    `json:"endpoint"`   // Push service endpoint, unique across all subscriptions.
	P256dh    string    `json:"p256dh"`     // Client public key used to encrypt the payload.
	Auth      string    `json:"auth"`       // Client authentication secret.
	LastUsed  time.Time `json:"last_used"`  // Timestamp of the last delivery attempt.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this subscription was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
