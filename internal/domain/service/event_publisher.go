package service

import (
	"context"
)

// RunEvent summarizes one completed pipeline invocation for downstream
// consumers (dashboards, audit).
type RunEvent struct {
	RequestID string         `json:"request_id,omitempty"` // For distributed tracing
	Job       string         `json:"job"`                  // "ingestion" or "expiry-check"
	OK        bool           `json:"ok"`
	Fetched   map[string]int `json:"fetched,omitempty"`
	Upserted  int            `json:"upserted,omitempty"`
	Matched   int            `json:"matched,omitempty"`
	Notified  int            `json:"notified"`
	Pushed    int            `json:"pushed"`
	ElapsedMS int64          `json:"elapsed_ms"`
}

// EventPublisher defines the interface for publishing run events to a
// message queue.
type EventPublisher interface {
	// PublishRunEvent publishes a pipeline run summary for async consumers.
	PublishRunEvent(ctx context.Context, event *RunEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
