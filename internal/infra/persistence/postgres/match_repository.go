package postgres

import (
	"context"

	"attic/internal/domain/repository"
	"attic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// InsertMatch records a possession-recall pair. The composite unique index
// absorbs replays: an existing pair is left untouched and reported as not
// created, which downstream uses to suppress duplicate notifications.
func (repo *matchRepository) InsertMatch(ctx context.Context, possessionID, recallID uuid.UUID) (bool, error) {
	matchM := &model.PossessionRecallMatchModel{
		PossessionID: possessionID,
		RecallID:     recallID,
	}

	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "possession_id"}, {Name: "recall_id"}},
		DoNothing: true,
	}).Create(matchM)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to insert match")
	}

	return result.RowsAffected > 0, nil
}
