package postgres

import (
	"context"
	"time"

	"attic/internal/domain/entity"
	"attic/internal/domain/repository"
	"attic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

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

// CreateNotification persists a new notification with push_sent_at unset.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// HasRecentExpiryNotification reports whether the possession already has an
// expiry reminder (nil recall reference) created after the cutoff.
func (repo *notificationRepository) HasRecentExpiryNotification(ctx context.Context, possessionID uuid.UUID, cutoff time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("possession_id = ?", possessionID).
		Where("recall_id IS NULL").
		Where("created_at >= ?", cutoff).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count recent expiry notifications")
	}

	return count > 0, nil
}

// FindPendingPush retrieves up to limit undispatched notifications, oldest
// first, joined with the recall source used for push titles.
func (repo *notificationRepository) FindPendingPush(ctx context.Context, limit int) ([]*entity.PendingPush, error) {
	var rows []struct {
		ID           uuid.UUID
		OwnerID      uuid.UUID
		PossessionID *uuid.UUID
		RecallID     *uuid.UUID
		Source       *string
		Message      string
	}

	query := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Select("notifications.id, notifications.owner_id, notifications.possession_id, notifications.recall_id, recalls.source, notifications.message").
		Joins("LEFT JOIN recalls ON recalls.id = notifications.recall_id").
		Where("notifications.push_sent_at IS NULL").
		Order("notifications.created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending notifications")
	}

	pending := make([]*entity.PendingPush, 0, len(rows))
	for _, row := range rows {
		var source *entity.RecallSource
		if row.Source != nil {
			s := entity.RecallSource(*row.Source)
			source = &s
		}

		pending = append(pending, &entity.PendingPush{
			NotificationID: row.ID,
			OwnerID:        row.OwnerID,
			PossessionID:   row.PossessionID,
			RecallID:       row.RecallID,
			RecallSource:   source,
			Message:        row.Message,
		})
	}

	return pending, nil
}

// MarkPushSent stamps push_sent_at for the given notifications.
func (repo *notificationRepository) MarkPushSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id IN ?", ids).
		Update("push_sent_at", sentAt).Error; err != nil {
		return errors.Wrap(err, "failed to mark notifications sent")
	}

	return nil
}

// --- Mapper Functions ---

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		PossessionID: data.PossessionID,
		RecallID:     data.RecallID,
		Message:      data.Message,
		ReadAt:       data.ReadAt,
		PushSentAt:   data.PushSentAt,
	}
}
