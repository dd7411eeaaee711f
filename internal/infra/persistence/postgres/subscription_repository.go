// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pushsvc/internal/domain/entity"
	"pushsvc/internal/domain/repository"
	"pushsvc/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindByUserIDs retrieves all subscriptions of the given users, oldest first.
func (repo *subscriptionRepository) FindByUserIDs(ctx context.Context, userIDs []string) ([]*entity.PushSubscription, error) {
	if len(userIDs) == 0 {
		return []*entity.PushSubscription{}, nil
	}

	var subscriptionModels []*model.PushSubscriptionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by users")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// FindByEndpoint retrieves the subscription registered for an endpoint.
func (repo *subscriptionRepository) FindByEndpoint(ctx context.Context, endpoint string) (*entity.PushSubscription, error) {
	var subscriptionM model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by endpoint")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// Upsert inserts the subscription or takes over the existing row for the same endpoint.
// The entity is refreshed from the stored row, so its ID is the persisted one.
func (repo *subscriptionRepository) Upsert(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "endpoint"}},
				DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth", "last_used", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(subscriptionM).Error; err != nil {
		return translateWriteError(err, "failed to upsert subscription")
	}

	*subscription = *toSubscriptionDomain(subscriptionM)

	return nil
}

// TouchLastUsed sets last_used on the given subscriptions in a single statement.
func (repo *subscriptionRepository) TouchLastUsed(ctx context.Context, ids []uuid.UUID, usedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"last_used":  usedAt,
			"updated_at": usedAt,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to update subscription last_used")
	}

	return nil
}

// DeleteByID removes a single subscription.
func (repo *subscriptionRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushSubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteByEndpoint removes the user's subscription for an endpoint.
func (repo *subscriptionRepository) DeleteByEndpoint(ctx context.Context, userID, endpoint string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&model.PushSubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription by endpoint")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// FindStaleIDs lists subscriptions last used before the cutoff, oldest first.
func (repo *subscriptionRepository) FindStaleIDs(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("last_used < ?", cutoff).
		Order("last_used ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stale subscriptions")
	}

	return ids, nil
}

// DeleteByIDs removes the given subscriptions and reports how many rows went away.
func (repo *subscriptionRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.PushSubscriptionModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete subscriptions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM PushSubscriptionModel to a domain PushSubscription entity.
func toSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:        data.ID,
		UserID:    data.UserID,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		LastUsed:  data.LastUsed,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain PushSubscription entity to a GORM PushSubscriptionModel.
func fromSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.PushSubscriptionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		LastUsed:  data.LastUsed,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
