// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pushsvc/internal/domain/entity"
)

// PreferenceRepository defines read access to user notification preferences.
type PreferenceRepository interface {
	// FindByUserIDs retrieves the preference rows that exist for the given users.
	// Users without a row are simply absent from the result.
	FindByUserIDs(ctx context.Context, userIDs []string) ([]*entity.UserPreference, error)
}
