// Package usecase defines the application use case interfaces.
package usecase

import "context"

// IngestionSummary is the structured result of one ingestion run, returned
// to the scheduler.
type IngestionSummary struct {
	OK        bool           `json:"ok"`
	ElapsedMS int64          `json:"elapsed_ms"`
	Fetched   map[string]int `json:"fetched"` // per-source counts plus "total"
	Upserted  int            `json:"upserted"`
	Matched   int            `json:"matched"`
	Notified  int            `json:"notified"`
	Pushed    int            `json:"pushed"`
}

// IngestionUsecase runs the recall ingestion pipeline: fetch all sources,
// upsert, match against the registry, generate notifications, dispatch push.
// The whole run is idempotent; overlapping or repeated invocations never
// duplicate matches or notifications.
type IngestionUsecase interface {
	Run(ctx context.Context) (*IngestionSummary, error)
}
