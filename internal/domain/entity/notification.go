// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationRecord is the history entry written for every accepted send.
type NotificationRecord struct {
	ID           uuid.UUID      `json:"id"`            // The Global Unique Identifier (GUID) for the record.
	UserID       string         `json:"user_id"`       // The authenticated caller who sent the notification.
	RecipientIDs []string       `json:"recipient_ids"` // The users targeted after preference filtering.
	Title        string         `json:"title"`         // Notification title as requested.
	Body         string         `json:"body"`          // Notification body as requested.
	Data         map[string]any `json:"data"`          // Arbitrary structured payload.
	SentAt       time.Time      `json:"sent_at"`       // Timestamp of when the send was accepted.
	Read         bool           `json:"read"`          // Set by the client-side "mark read" flow.
}

// NotificationLog is the per-user audit row the rate limiter reads back.
type NotificationLog struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Topic        string    `json:"topic"`
	SentAt       time.Time `json:"sent_at"`
	SuccessCount int       `json:"success_count"`
	FailureCount int       `json:"failure_count"`
	RateLimited  bool      `json:"rate_limited"`
}

// NotificationAction is a button shown with the notification.
type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
}

// NotificationRequest is a send request as accepted from callers and queued jobs.
type NotificationRequest struct {
	UserIDs []string             `json:"userIds,omitempty" validate:"required,min=1,dive,required"`
	UserID  string               `json:"userId,omitempty"` // Legacy singular target, folded into UserIDs.
	Title   string               `json:"title" validate:"required"`
	Body    string               `json:"body" validate:"required"`
	Icon    string               `json:"icon,omitempty"`
	Image   string               `json:"image,omitempty"`
	Badge   string               `json:"badge,omitempty"`
	URL     string               `json:"url,omitempty"`
	Tag     string               `json:"tag,omitempty"`
	Topic   string               `json:"topic,omitempty"`
	Actions []NotificationAction `json:"actions,omitempty"`
	Data    map[string]any       `json:"data,omitempty"`
}

// Normalize prefers the plural target list and falls back to the singular one.
func (r *NotificationRequest) Normalize() {
	if len(r.UserIDs) == 0 && r.UserID != "" {
		r.UserIDs = []string{r.UserID}
	}
	r.UserID = ""
}
