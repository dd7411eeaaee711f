package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserPreferenceModel is the GORM-specific struct for the 'user_preferences' table.
type UserPreferenceModel struct {
	UserID                   string         `gorm:"type:text;primary_key"`
	PushNotificationsEnabled bool           `gorm:"not null;default:true"`
	NotificationTopics       datatypes.JSON `gorm:"type:jsonb"` // {"promo": false, "match": true}
	RateLimit                datatypes.JSON `gorm:"type:jsonb"` // {"max_per_day": 5}
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}
