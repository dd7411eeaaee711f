package postgres

import (
	"context"
	"time"

	"pushsvc/internal/domain/entity"
	"pushsvc/internal/domain/repository"
	"pushsvc/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const logInsertBatchSize = 500

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateRecord persists a notification history record.
func (repo *notificationRepository) CreateRecord(ctx context.Context, record *entity.NotificationRecord) error {
	recordM, err := fromRecordDomain(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return translateWriteError(err, "failed to create notification record")
	}

	record.ID = recordM.ID

	return nil
}

// CreateLog persists a single notification log entry.
func (repo *notificationRepository) CreateLog(ctx context.Context, log *entity.NotificationLog) error {
	logM := fromLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return translateWriteError(err, "failed to create notification log")
	}

	log.ID = logM.ID

	return nil
}

// BatchCreateLogs persists multiple notification log entries.
func (repo *notificationRepository) BatchCreateLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, logInsertBatchSize).Error; err != nil {
		return translateWriteError(err, "failed to batch create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// FindRecentLogs retrieves accepted log entries of the given users since the given time, newest first.
func (repo *notificationRepository) FindRecentLogs(ctx context.Context, userIDs []string, since time.Time) ([]*entity.NotificationLog, error) {
	if len(userIDs) == 0 {
		return []*entity.NotificationLog{}, nil
	}

	var logModels []*model.NotificationLogModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND sent_at >= ? AND rate_limited = ?", userIDs, since, false).
		Order("sent_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent notification logs")
	}

	logs := make([]*entity.NotificationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// fromRecordDomain converts a domain NotificationRecord entity to a GORM NotificationModel.
func fromRecordDomain(data *entity.NotificationRecord) (*model.NotificationModel, error) {
	recipients := data.RecipientIDs
	if recipients == nil {
		recipients = []string{}
	}

	recipientsJSON, err := encodeJSON(recipients)
	if err != nil {
		return nil, err
	}

	var payload any
	if data.Data != nil {
		payload = data.Data
	}
	dataJSON, err := encodeJSON(payload)
	if err != nil {
		return nil, err
	}

	return &model.NotificationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		RecipientIDs: recipientsJSON,
		Title:        data.Title,
		Body:         data.Body,
		Data:         dataJSON,
		SentAt:       data.SentAt,
		Read:         data.Read,
	}, nil
}

// toLogDomain converts a GORM NotificationLogModel to a domain NotificationLog entity.
func toLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	return &entity.NotificationLog{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Body:         data.Body,
		Topic:        data.Topic,
		SentAt:       data.SentAt,
		SuccessCount: data.SuccessCount,
		FailureCount: data.FailureCount,
		RateLimited:  data.RateLimited,
	}
}

// fromLogDomain converts a domain NotificationLog entity to a GORM NotificationLogModel.
func fromLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	return &model.NotificationLogModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Body:         data.Body,
		Topic:        data.Topic,
		SentAt:       data.SentAt,
		SuccessCount: data.SuccessCount,
		FailureCount: data.FailureCount,
		RateLimited:  data.RateLimited,
	}
}
