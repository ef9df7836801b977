package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"attic/config"
	"attic/internal/domain/entity"
	"attic/internal/domain/repository"
	"attic/internal/domain/service"
	"attic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type dispatchService struct {
	logger        *slog.Logger
	notifications repository.NotificationRepository
	pushTargets   repository.PushTargetRepository
	gateway       service.PushGateway
	pageSize      int
	batchSize     int
	maxConcurrent int

	now func() time.Time
}

// NewDispatchService creates the push dispatcher shared by the ingestion and
// expiry jobs.
func NewDispatchService(
	logger *slog.Logger,
	cfg *config.Config,
	notifications repository.NotificationRepository,
	pushTargets repository.PushTargetRepository,
	gateway service.PushGateway,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:        logger,
		notifications: notifications,
		pushTargets:   pushTargets,
		gateway:       gateway,
		pageSize:      cfg.Push.PageSize,
		batchSize:     cfg.Push.BatchSize,
		maxConcurrent: cfg.Push.MaxConcurrent,
		now:           time.Now,
	}
}

// DispatchPending pages undispatched notifications, resolves device tokens,
// sends gateway batches, and stamps push_sent_at on every notification that
// was handed to the gateway. Failed batches stay pending for the next run;
// owners without a token are skipped and stay pending indefinitely.
func (s *dispatchService) DispatchPending(ctx context.Context) (int, error) {
	pending, err := s.notifications.FindPendingPush(ctx, s.pageSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load pending notifications")
	}
	if len(pending) == 0 {
		return 0, nil
	}

	ownerIDs := collectOwnerIDs(pending)
	tokens, err := s.pushTargets.FindTokensByOwners(ctx, ownerIDs)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load push tokens")
	}

	// Pair each eligible message with its notification ID so only messages
	// from successfully posted batches are marked sent.
	var (
		messages []service.PushMessage
		ids      []uuid.UUID
	)
	for _, p := range pending {
		token, ok := tokens[p.OwnerID]
		if !ok || token == "" {
			continue
		}
		messages = append(messages, s.composeMessage(p, token))
		ids = append(ids, p.NotificationID)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	var (
		mu      sync.Mutex
		sentIDs []uuid.UUID
	)

	var group errgroup.Group
	group.SetLimit(s.maxConcurrent)
	for start := 0; start < len(messages); start += s.batchSize {
		end := min(start+s.batchSize, len(messages))
		batch := messages[start:end]
		batchIDs := ids[start:end]

		group.Go(func() error {
			tickets, sendErr := s.gateway.SendBatch(ctx, batch)
			if sendErr != nil {
				s.logger.Warn("push batch failed, will retry next run",
					slog.Int("batch_size", len(batch)),
					slog.Any("error", sendErr),
				)

				return nil
			}

			for i, ticket := range tickets {
				if ticket.Status != "ok" && i < len(batch) {
					s.logger.Warn("push ticket error",
						slog.String("status", ticket.Status),
						slog.String("message", ticket.Message),
					)
				}
			}

			mu.Lock()
			sentIDs = append(sentIDs, batchIDs...)
			mu.Unlock()

			return nil
		})
	}
	// Batch errors are handled inside the closures.
	_ = group.Wait()

	if len(sentIDs) == 0 {
		return 0, nil
	}

	if err := s.notifications.MarkPushSent(ctx, sentIDs, s.now()); err != nil {
		return len(sentIDs), errors.Wrap(err, "failed to mark notifications sent")
	}

	return len(sentIDs), nil
}

// composeMessage builds the gateway wire message for one pending
// notification.
func (s *dispatchService) composeMessage(p *entity.PendingPush, token string) service.PushMessage {
	data := map[string]string{
		"notificationId": p.NotificationID.String(),
	}

	var title string
	if p.RecallID != nil {
		source := "Gov"
		if p.RecallSource != nil {
			source = string(*p.RecallSource)
		}
		title = "🚨 Recall Alert — " + source
	} else {
		title = "📋 Warranty Reminder"
		data["type"] = "warranty"
		if p.PossessionID != nil {
			data["possessionId"] = p.PossessionID.String()
		}
	}

	return service.PushMessage{
		To:    token,
		Title: title,
		Body:  p.Message,
		Data:  data,
		Sound: "default",
	}
}

func collectOwnerIDs(pending []*entity.PendingPush) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(pending))
	ids := make([]uuid.UUID, 0, len(pending))
	for _, p := range pending {
		if _, ok := seen[p.OwnerID]; ok {
			continue
		}
		seen[p.OwnerID] = struct{}{}
		ids = append(ids, p.OwnerID)
	}

	return ids
}
