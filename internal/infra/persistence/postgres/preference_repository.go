package postgres

import (
	"context"

	"pushsvc/internal/domain/entity"
	"pushsvc/internal/domain/repository"
	"pushsvc/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindByUserIDs retrieves the stored preferences of the given users in one read.
func (repo *preferenceRepository) FindByUserIDs(ctx context.Context, userIDs []string) ([]*entity.UserPreference, error) {
	if len(userIDs) == 0 {
		return []*entity.UserPreference{}, nil
	}

	var preferenceModels []*model.UserPreferenceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&preferenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find preferences by users")
	}

	preferences := make([]*entity.UserPreference, 0, len(preferenceModels))
	for _, preferenceM := range preferenceModels {
		preference, err := toPreferenceDomain(preferenceM)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid preference row for user %s", preferenceM.UserID)
		}
		preferences = append(preferences, preference)
	}

	return preferences, nil
}

// --- Mapper Functions ---

// toPreferenceDomain converts a GORM UserPreferenceModel to a domain UserPreference entity.
func toPreferenceDomain(data *model.UserPreferenceModel) (*entity.UserPreference, error) {
	preference := &entity.UserPreference{
		UserID:                   data.UserID,
		PushNotificationsEnabled: data.PushNotificationsEnabled,
		NotificationTopics:       map[string]bool{},
	}

	if err := decodeJSON(data.NotificationTopics, &preference.NotificationTopics); err != nil {
		return nil, err
	}

	if len(data.RateLimit) > 0 && string(data.RateLimit) != "null" {
		override := &entity.RateLimitOverride{}
		if err := decodeJSON(data.RateLimit, override); err != nil {
			return nil, err
		}
		preference.RateLimit = override
	}

	return preference, nil
}
