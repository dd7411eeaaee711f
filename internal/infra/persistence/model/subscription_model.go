package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
// It represents a browser endpoint registered for Web Push delivery.
type PushSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    string    `gorm:"type:text;not null;index"`
	Endpoint  string    `gorm:"type:text;not null;uniqueIndex"`
	P256dh    string    `gorm:"column:p256dh;type:text;not null"`
	Auth      string    `gorm:"type:text;not null"`
	LastUsed  time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
