package usecase

import "context"

// CleanupResult summarizes one stale subscription sweep.
type CleanupResult struct {
	Found         int `json:"found"`
	Deleted       int `json:"deleted"`
	FailedBatches int `json:"failed_batches"`
}

// CleanupUsecase removes subscriptions that have not been used for a long time
type CleanupUsecase interface {
	// CleanupStaleSubscriptions is best effort: batch failures are logged and
	// skipped, and the sweep always runs to completion.
	CleanupStaleSubscriptions(ctx context.Context) *CleanupResult
}
