package entity

import (
	"time"

	"github.com/google/uuid"
)

// PossessionRecallMatch is a recorded judgment that a possession is affected
// by a recall. Matches are unique per (possession, recall) pair and immutable
// once written; the heuristic is never re-applied to an existing match.
type PossessionRecallMatch struct {
	ID           uuid.UUID `json:"id"`
	PossessionID uuid.UUID `json:"possession_id"`
	RecallID     uuid.UUID `json:"recall_id"`
	CreatedAt    time.Time `json:"created_at"`
}
