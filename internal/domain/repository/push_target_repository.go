package repository

import (
	"context"

	"github.com/google/uuid"
)

// PushTargetRepository is the read-only view of the device token directory
// owned by the profile system.
type PushTargetRepository interface {
	// FindTokensByOwners returns the registered push token per owner.
	// Owners without a token are absent from the result.
	FindTokensByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]string, error)
}
