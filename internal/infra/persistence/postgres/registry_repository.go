package postgres

import (
	"context"
	"time"

	"attic/internal/domain/entity"
	"attic/internal/domain/repository"
	"attic/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// registryRepository implements the read-only repository.RegistryRepository
// interface over the item CRUD system's tables.
type registryRepository struct {
	db *gorm.DB
}

// NewRegistryRepository is the constructor for registryRepository.
func NewRegistryRepository(db *gorm.DB) repository.RegistryRepository {
	return &registryRepository{
		db: db,
	}
}

// ListPossessions retrieves every registered possession.
func (repo *registryRepository) ListPossessions(ctx context.Context) ([]*entity.Possession, error) {
	var possessionModels []*model.PossessionModel

	if err := repo.db.WithContext(ctx).
		Find(&possessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list possessions")
	}

	possessions := make([]*entity.Possession, 0, len(possessionModels))
	for _, possessionM := range possessionModels {
		possessions = append(possessions, toPossessionDomain(possessionM))
	}

	return possessions, nil
}

// ListVehiclePossessions retrieves possessions of category Vehicles with a
// non-empty brand, the input set for the vehicle feed adapter.
func (repo *registryRepository) ListVehiclePossessions(ctx context.Context) ([]*entity.Possession, error) {
	var possessionModels []*model.PossessionModel

	if err := repo.db.WithContext(ctx).
		Where("category = ?", entity.CategoryVehicles).
		Where("brand IS NOT NULL AND brand <> ''").
		Find(&possessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicle possessions")
	}

	possessions := make([]*entity.Possession, 0, len(possessionModels))
	for _, possessionM := range possessionModels {
		possessions = append(possessions, toPossessionDomain(possessionM))
	}

	return possessions, nil
}

// ListExpiringWarranties retrieves possessions whose warranty ends within
// [from, to], inclusive.
func (repo *registryRepository) ListExpiringWarranties(ctx context.Context, from, to time.Time) ([]*entity.ExpiringWarranty, error) {
	var rows []struct {
		model.PossessionModel
		EndDate time.Time
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.WarrantyModel{}).
		Select("possessions.*, warranties.end_date").
		Joins("INNER JOIN possessions ON possessions.id = warranties.possession_id").
		Where("warranties.end_date >= ? AND warranties.end_date <= ?", from, to).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expiring warranties")
	}

	expiring := make([]*entity.ExpiringWarranty, 0, len(rows))
	for _, row := range rows {
		expiring = append(expiring, &entity.ExpiringWarranty{
			Possession: *toPossessionDomain(&row.PossessionModel),
			EndDate:    row.EndDate,
		})
	}

	return expiring, nil
}

// --- Mapper Functions ---

// toPossessionDomain converts a GORM PossessionModel to a domain Possession entity.
func toPossessionDomain(data *model.PossessionModel) *entity.Possession {
	if data == nil {
		return nil
	}

	return &entity.Possession{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Brand:        data.Brand,
		Model:        data.Model,
		Category:     data.Category,
		PurchaseDate: data.PurchaseDate,
	}
}
