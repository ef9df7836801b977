package repository

import (
	"context"
	"time"

	"attic/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines persistence for user-facing notifications.
type NotificationRepository interface {
	// CreateNotification persists a new notification with push_sent_at unset.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// HasRecentExpiryNotification reports whether the possession already has
	// an expiry reminder (nil recall reference) created after the cutoff.
	HasRecentExpiryNotification(ctx context.Context, possessionID uuid.UUID, cutoff time.Time) (bool, error)

	// FindPendingPush retrieves up to limit notifications with push_sent_at
	// unset, oldest first, joined with their recall source.
	FindPendingPush(ctx context.Context, limit int) ([]*entity.PendingPush, error)

	// MarkPushSent stamps push_sent_at for the given notifications.
	MarkPushSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error
}
