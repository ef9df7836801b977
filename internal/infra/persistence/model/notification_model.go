package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// A row with a nil RecallID is a warranty-expiry reminder.
type NotificationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	PossessionID *uuid.UUID `gorm:"type:uuid;index"`
	RecallID     *uuid.UUID `gorm:"type:uuid;index"`
	Message      string     `gorm:"type:text;not null"`
	CreatedAt    time.Time
	ReadAt       *time.Time
	PushSentAt   *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
