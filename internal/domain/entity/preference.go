// Package entity contains the core business objects of the project.
package entity

// UserPreference holds a user's push notification settings.
type UserPreference struct {
	UserID                   string             `json:"user_id"`
	PushNotificationsEnabled bool               `json:"push_notifications_enabled"`
	NotificationTopics       map[string]bool    `json:"notification_topics"`
	RateLimit                *RateLimitOverride `json:"rate_limit,omitempty"`
}

// RateLimitOverride replaces individual rate limit defaults for one user.
// A nil field keeps the default value.
type RateLimitOverride struct {
	MaxPerDay            *int `json:"max_per_day,omitempty"`
	CooldownMinutes      *int `json:"cooldown_minutes,omitempty"`
	CombineWindowSeconds *int `json:"combine_window_seconds,omitempty"`
}

// DefaultUserPreference is applied when a user has no preference row.
// Users without preferences are push-enabled with no topic restriction.
func DefaultUserPreference(userID string) *UserPreference {
	return &UserPreference{
		UserID:                   userID,
		PushNotificationsEnabled: true,
		NotificationTopics:       map[string]bool{},
	}
}

// AllowsTopic reports whether the user accepts notifications for the topic.
// Only an explicit false opts the user out; an empty topic is always allowed.
func (p *UserPreference) AllowsTopic(topic string) bool {
	if topic == "" || p.NotificationTopics == nil {
		return true
	}

	enabled, ok := p.NotificationTopics[topic]

	return !ok || enabled
}
