package repository

import (
	"context"
	"time"

	"attic/internal/domain/entity"
)

// RegistryRepository is the read-only view of the possession registry owned
// by the item CRUD system. The pipeline only consumes it.
type RegistryRepository interface {
	// ListPossessions retrieves every registered possession.
	ListPossessions(ctx context.Context) ([]*entity.Possession, error)

	// ListVehiclePossessions retrieves possessions of category Vehicles with
	// a non-empty brand, used by the vehicle feed adapter.
	ListVehiclePossessions(ctx context.Context) ([]*entity.Possession, error)

	// ListExpiringWarranties retrieves possessions whose warranty ends within
	// [from, to], inclusive.
	ListExpiringWarranties(ctx context.Context, from, to time.Time) ([]*entity.ExpiringWarranty, error)
}
