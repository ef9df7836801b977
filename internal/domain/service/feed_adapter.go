// Package service defines interfaces for external collaborators consumed by
// the use case layer.
package service

import (
	"context"
	"time"

	"attic/internal/domain/entity"
)

// FeedAdapter fetches and normalizes recalls from one upstream government
// feed. Adapters fail soft: the caller treats any error as an empty result
// for that source and never aborts the run because of it.
type FeedAdapter interface {
	// Source identifies the feed this adapter covers.
	Source() entity.RecallSource

	// Fetch retrieves recalls with activity at or after windowStart.
	Fetch(ctx context.Context, windowStart time.Time) ([]*entity.Recall, error)
}
