// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"attic/internal/domain/entity"
)

// RecallRepository defines recall persistence operations.
type RecallRepository interface {
	// UpsertRecalls persists normalized recalls keyed by (source, external_id).
	// Existing rows have their non-key fields overwritten. Returns the number
	// of rows written. Safe to call repeatedly with overlapping windows.
	UpsertRecalls(ctx context.Context, recalls []*entity.Recall) (int, error)

	// FindUpdatedSince retrieves recalls updated after the cutoff,
	// newest first.
	FindUpdatedSince(ctx context.Context, cutoff time.Time) ([]*entity.Recall, error)
}
