package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It holds the history entry of every accepted send.
type NotificationModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       string         `gorm:"type:text;not null;index"`
	RecipientIDs datatypes.JSON `gorm:"type:jsonb;not null"`
	Title        string         `gorm:"type:text;not null"`
	Body         string         `gorm:"type:text;not null"`
	Data         datatypes.JSON `gorm:"type:jsonb"`
	SentAt       time.Time      `gorm:"not null"`
	Read         bool           `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// The rate limiter reads it back by (user_id, sent_at).
type NotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       string    `gorm:"type:text;not null;index:idx_notification_logs_user_sent,priority:1"`
	Title        string    `gorm:"type:text;not null"`
	Body         string    `gorm:"type:text;not null"`
	Topic        string    `gorm:"type:text"`
	SentAt       time.Time `gorm:"not null;index:idx_notification_logs_user_sent,priority:2,sort:desc"`
	SuccessCount int       `gorm:"not null;default:0"`
	FailureCount int       `gorm:"not null;default:0"`
	RateLimited  bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
