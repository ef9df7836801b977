package model

import (
	"time"

	"github.com/google/uuid"
)

// PossessionRecallMatchModel is the GORM-specific struct for the
// 'possession_recall_matches' junction table. The composite unique index is
// the dedup guard for repeated matcher runs.
type PossessionRecallMatchModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PossessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_possession_recall"`
	RecallID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_possession_recall"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PossessionRecallMatchModel) TableName() string {
	return "possession_recall_matches"
}
