package postgres

import (
	"context"

	"attic/internal/domain/repository"
	"attic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pushTargetRepository implements the read-only
// repository.PushTargetRepository interface over the profile table.
type pushTargetRepository struct {
	db *gorm.DB
}

// NewPushTargetRepository is the constructor for pushTargetRepository.
func NewPushTargetRepository(db *gorm.DB) repository.PushTargetRepository {
	return &pushTargetRepository{
		db: db,
	}
}

// FindTokensByOwners returns the registered push token per owner. Owners
// without a token are absent from the result.
func (repo *pushTargetRepository) FindTokensByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ownerIDs) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ownerIDs).
		Where("push_token IS NOT NULL AND push_token <> ''").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push tokens")
	}

	tokens := make(map[uuid.UUID]string, len(profileModels))
	for _, profileM := range profileModels {
		if profileM.PushToken == nil {
			continue
		}
		tokens[profileM.ID] = *profileM.PushToken
	}

	return tokens, nil
}
