// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"attic/internal/domain/entity"
	"attic/internal/domain/repository"
	"attic/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recallRepository implements the repository.RecallRepository interface.
type recallRepository struct {
	db *gorm.DB
}

// NewRecallRepository is the constructor for recallRepository.
func NewRecallRepository(db *gorm.DB) repository.RecallRepository {
	return &recallRepository{
		db: db,
	}
}

// UpsertRecalls persists recalls keyed by (source, external_id). Conflicting
// rows have their non-key fields overwritten so re-fetched advisories pick up
// upstream edits; created_at and the row ID are preserved.
func (repo *recallRepository) UpsertRecalls(ctx context.Context, recalls []*entity.Recall) (int, error) {
	if len(recalls) == 0 {
		return 0, nil
	}

	recallModels := make([]*model.RecallModel, 0, len(recalls))
	for _, recall := range recalls {
		recallModels = append(recallModels, fromRecallDomain(recall))
	}

	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "source"}, {Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "hazard", "remedy", "url",
			"affected_products", "recall_date", "updated_at",
		}),
	}).CreateInBatches(recallModels, 100)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to upsert recalls")
	}

	return int(result.RowsAffected), nil
}

// FindUpdatedSince retrieves recalls touched after the cutoff, newest first.
func (repo *recallRepository) FindUpdatedSince(ctx context.Context, cutoff time.Time) ([]*entity.Recall, error) {
	var recallModels []*model.RecallModel

	if err := repo.db.WithContext(ctx).
		Where("updated_at > ?", cutoff).
		Order("updated_at DESC").
		Find(&recallModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recalls updated since cutoff")
	}

	recalls := make([]*entity.Recall, 0, len(recallModels))
	for _, recallM := range recallModels {
		recalls = append(recalls, toRecallDomain(recallM))
	}

	return recalls, nil
}

// --- Mapper Functions ---

// toRecallDomain converts a GORM RecallModel to a domain Recall entity.
func toRecallDomain(data *model.RecallModel) *entity.Recall {
	if data == nil {
		return nil
	}

	return &entity.Recall{
		ID:               data.ID,
		Source:           entity.RecallSource(data.Source),
		ExternalID:       data.ExternalID,
		Title:            data.Title,
		Description:      data.Description,
		Hazard:           data.Hazard,
		Remedy:           data.Remedy,
		URL:              data.URL,
		AffectedProducts: data.AffectedProducts,
		RecallDate:       data.RecallDate,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromRecallDomain converts a domain Recall entity to a GORM RecallModel.
func fromRecallDomain(data *entity.Recall) *model.RecallModel {
	if data == nil {
		return nil
	}

	return &model.RecallModel{
		ID:               data.ID,
		Source:           string(data.Source),
		ExternalID:       data.ExternalID,
		Title:            data.Title,
		Description:      data.Description,
		Hazard:           data.Hazard,
		Remedy:           data.Remedy,
		URL:              data.URL,
		AffectedProducts: data.AffectedProducts,
		RecallDate:       data.RecallDate,
	}
}
