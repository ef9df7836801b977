package usecase

import "context"

// ExpirySummary is the structured result of one warranty expiry-check run.
type ExpirySummary struct {
	OK        bool  `json:"ok"`
	ElapsedMS int64 `json:"elapsed_ms"`
	Checked   int   `json:"checked"`
	Notified  int   `json:"notified"`
	Pushed    int   `json:"pushed"`
}

// ExpiryUsecase runs the warranty-expiry reminder job: find warranties ending
// inside the horizon, create reminder notifications under the per-possession
// cooldown, and dispatch push.
type ExpiryUsecase interface {
	Run(ctx context.Context) (*ExpirySummary, error)
}
