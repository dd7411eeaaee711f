package impl

import (
	"io"
	"log/slog"
	"time"

	"pushsvc/config"
)

// fixedNow is noon so "today" has room on both sides for log fixtures.
var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.RateLimit.MaxPerDay = 20
	cfg.RateLimit.CooldownMinutes = 5
	cfg.RateLimit.CombineThresholdSeconds = 60
	cfg.Dispatch.SendTimeout = 2 * time.Second
	cfg.Dispatch.MaxParallel = 4
	cfg.Cleanup.StaleAfter = 90 * 24 * time.Hour
	cfg.Cleanup.BatchSize = 10

	return cfg
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func intPtr(v int) *int {
	return &v
}
