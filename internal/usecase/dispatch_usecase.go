package usecase

import "context"

// DispatchUsecase sends pending notifications to the push gateway in batches
// and stamps push_sent_at on everything that was handed over. Notifications
// whose owner has no registered token stay pending indefinitely; failed
// batches stay pending and are retried on the next scheduled run.
type DispatchUsecase interface {
	DispatchPending(ctx context.Context) (int, error)
}
