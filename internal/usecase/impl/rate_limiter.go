package impl

import (
	"context"
	"fmt"
	"maps"
	"regexp"
	"sort"
	"time"

	"pushsvc/config"
	"pushsvc/internal/domain/entity"
	"pushsvc/internal/domain/repository"
	"pushsvc/internal/domain/service"
	"pushsvc/internal/errors"
	"pushsvc/internal/usecase"
)

const historyWindow = 24 * time.Hour

// senderPrefix captures "<name>" in titles shaped like "<name>: <rest>".
var senderPrefix = regexp.MustCompile(`^([^:]+):`)

type rateLimiter struct {
	notificationRepo repository.NotificationRepository
	clock            service.Clock
	defaults         usecase.RateLimitSettings
}

// NewRateLimiter creates a rate limiter reading history from the notification log
func NewRateLimiter(
	cfg *config.Config,
	notificationRepo repository.NotificationRepository,
	clock service.Clock,
) usecase.RateLimiter {
	return &rateLimiter{
		notificationRepo: notificationRepo,
		clock:            clock,
		defaults: usecase.RateLimitSettings{
			MaxPerDay:               cfg.RateLimit.MaxPerDay,
			CooldownMinutes:         cfg.RateLimit.CooldownMinutes,
			CombineThresholdSeconds: cfg.RateLimit.CombineThresholdSeconds,
		},
	}
}

// Evaluate loads the last 24 hours of history for all users in one read and
// decides for each user independently.
func (r *rateLimiter) Evaluate(ctx context.Context, in *usecase.EvaluateInput) (map[string]*usecase.Decision, error) {
	decisions := make(map[string]*usecase.Decision, len(in.UserIDs))
	if len(in.UserIDs) == 0 {
		return decisions, nil
	}

	now := r.clock.Now()

	logs, err := r.notificationRepo.FindRecentLogs(ctx, in.UserIDs, now.Add(-historyWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification history")
	}

	history := make(map[string][]*entity.NotificationLog, len(in.UserIDs))
	for _, log := range logs {
		history[log.UserID] = append(history[log.UserID], log)
	}

	for _, userID := range in.UserIDs {
		settings := r.settingsFor(in.Overrides[userID])
		decisions[userID] = decide(now, settings, history[userID], in)
	}

	return decisions, nil
}

// settingsFor overlays the user's override fields on the defaults.
func (r *rateLimiter) settingsFor(override *entity.RateLimitOverride) usecase.RateLimitSettings {
	settings := r.defaults
	if override == nil {
		return settings
	}

	if override.MaxPerDay != nil {
		settings.MaxPerDay = *override.MaxPerDay
	}
	if override.CooldownMinutes != nil {
		settings.CooldownMinutes = *override.CooldownMinutes
	}
	if override.CombineWindowSeconds != nil {
		settings.CombineThresholdSeconds = *override.CombineWindowSeconds
	}

	return settings
}

// decide applies combination, then cooldown, then the daily cap.
// A combined notification continues an already permitted stream, so it skips
// the cooldown and cap checks.
func decide(now time.Time, settings usecase.RateLimitSettings, logs []*entity.NotificationLog, in *usecase.EvaluateInput) *usecase.Decision {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].SentAt.After(logs[j].SentAt)
	})

	if matches := combinableCount(now, settings, logs, in.Topic); matches > 0 {
		return combine(matches+1, in)
	}

	unchanged := func(send bool) *usecase.Decision {
		return &usecase.Decision{
			ShouldSend: send,
			Title:      in.Title,
			Body:       in.Body,
			Data:       in.Data,
		}
	}

	if len(logs) > 0 {
		elapsed := now.Sub(logs[0].SentAt)
		if elapsed < time.Duration(settings.CooldownMinutes)*time.Minute {
			return unchanged(false)
		}
	}

	if countSince(logs, startOfDay(now)) >= settings.MaxPerDay {
		return unchanged(false)
	}

	return unchanged(true)
}

// combinableCount counts same-topic entries sent within the combine window.
// Untopiced notifications are never combined, and a zero window disables combining.
func combinableCount(now time.Time, settings usecase.RateLimitSettings, logs []*entity.NotificationLog, topic string) int {
	if topic == "" || settings.CombineThresholdSeconds <= 0 {
		return 0
	}

	window := time.Duration(settings.CombineThresholdSeconds) * time.Second
	matches := 0
	for _, log := range logs {
		if log.Topic == topic && now.Sub(log.SentAt) <= window {
			matches++
		}
	}

	return matches
}

func combine(count int, in *usecase.EvaluateInput) *usecase.Decision {
	title := fmt.Sprintf("%d new %s notifications", count, in.Topic)
	if m := senderPrefix.FindStringSubmatch(in.Title); m != nil {
		title = fmt.Sprintf("%s: %d new updates", m[1], count)
	}

	more := count - 1
	suffix := ""
	if count > 2 {
		suffix = "s"
	}
	body := fmt.Sprintf("%s\n\n+%d more notification%s", in.Body, more, suffix)

	data := make(map[string]any, len(in.Data)+4)
	maps.Copy(data, in.Data)
	data["combined"] = true
	data["combineCount"] = count
	data["originalTitle"] = in.Title
	data["originalBody"] = in.Body

	return &usecase.Decision{
		ShouldSend:   true,
		Title:        title,
		Body:         body,
		Data:         data,
		Combined:     true,
		CombineCount: count,
	}
}

func countSince(logs []*entity.NotificationLog, since time.Time) int {
	count := 0
	for _, log := range logs {
		if !log.SentAt.Before(since) {
			count++
		}
	}

	return count
}

// startOfDay returns local midnight of the day containing t.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
