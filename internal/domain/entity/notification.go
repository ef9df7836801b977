package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one user-facing event: either a recall match
// (RecallID set) or a warranty-expiry reminder (RecallID nil).
type Notification struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	PossessionID *uuid.UUID `json:"possession_id"` // nil for account-level notices
	RecallID     *uuid.UUID `json:"recall_id"`     // nil for expiry reminders
	Message      string     `json:"message"`
	CreatedAt    time.Time  `json:"created_at"`
	ReadAt       *time.Time `json:"read_at"`       // set by the mobile UI
	PushSentAt   *time.Time `json:"push_sent_at"`  // set by the push dispatcher
}

// PendingPush is a notification awaiting push dispatch, joined with the
// recall source needed to compose the push title.
type PendingPush struct {
	NotificationID uuid.UUID
	OwnerID        uuid.UUID
	PossessionID   *uuid.UUID
	RecallID       *uuid.UUID
	RecallSource   *RecallSource
	Message        string
}
