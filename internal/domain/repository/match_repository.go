package repository

import (
	"context"

	"github.com/google/uuid"
)

// MatchRepository defines persistence for possession-recall match junctions.
type MatchRepository interface {
	// InsertMatch records that a possession is affected by a recall.
	// Returns created=false when the pair already exists; the row is never
	// modified in that case. The (possession_id, recall_id) uniqueness
	// constraint is the concurrency control for repeated runs.
	InsertMatch(ctx context.Context, possessionID, recallID uuid.UUID) (created bool, err error)
}
