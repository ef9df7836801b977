package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"attic/config"
	"attic/internal/domain/entity"
	"attic/internal/domain/repository"
	"attic/internal/domain/service"
	"attic/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type ingestionService struct {
	logger     *slog.Logger
	feedWindow time.Duration
	adapters   []service.FeedAdapter
	recallRepo repository.RecallRepository
	matcher    *matcher
	dispatcher usecase.DispatchUsecase
	publisher  service.EventPublisher

	now func() time.Time
}

// NewIngestionService wires the full ingestion pipeline: adapter fan-out,
// recall upsert, matching, notification generation, and push dispatch.
func NewIngestionService(
	logger *slog.Logger,
	cfg *config.Config,
	adapters []service.FeedAdapter,
	recallRepo repository.RecallRepository,
	registryRepo repository.RegistryRepository,
	matchRepo repository.MatchRepository,
	notificationRepo repository.NotificationRepository,
	dispatcher usecase.DispatchUsecase,
	publisher service.EventPublisher,
) usecase.IngestionUsecase {
	return &ingestionService{
		logger:     logger,
		feedWindow: cfg.Feeds.Window,
		adapters:   adapters,
		recallRepo: recallRepo,
		matcher: newMatcher(
			logger,
			recallRepo,
			registryRepo,
			matchRepo,
			notificationRepo,
			cfg.Pipeline.MatchWindow,
		),
		dispatcher: dispatcher,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Run executes one ingestion invocation. Per-source failures contribute zero
// records; an upsert failure leaves matching to operate on previously
// persisted recalls. Only a registry or recall store read failure is fatal.
func (s *ingestionService) Run(ctx context.Context) (*usecase.IngestionSummary, error) {
	start := s.now()
	windowStart := start.Add(-s.feedWindow)

	summary := &usecase.IngestionSummary{
		Fetched: make(map[string]int, len(s.adapters)+1),
	}

	// Fan out to all sources concurrently; wait for every adapter and treat
	// individual failures as empty results.
	fetched := s.fetchAll(ctx, windowStart, summary.Fetched)

	if len(fetched) > 0 {
		upserted, err := s.recallRepo.UpsertRecalls(ctx, fetched)
		if err != nil {
			s.logger.Error("recall upsert failed, continuing with persisted recalls",
				slog.Any("error", err),
			)
		} else {
			summary.Upserted = upserted
		}
	}

	matched, notified, err := s.matcher.matchRecentRecalls(ctx)
	if err != nil {
		s.logger.Error("matching pass aborted", slog.Any("error", err))
		s.finish(ctx, "ingestion", summary.Fetched, summary, start)

		return summary, err
	}
	summary.Matched = matched
	summary.Notified = notified

	pushed, err := s.dispatcher.DispatchPending(ctx)
	if err != nil {
		// Pending notifications survive; the next cadence retries them.
		s.logger.Error("push dispatch failed", slog.Any("error", err))
	}
	summary.Pushed = pushed

	summary.OK = true
	s.finish(ctx, "ingestion", summary.Fetched, summary, start)

	s.logger.Info("ingestion run completed",
		slog.Int("fetched", summary.Fetched["total"]),
		slog.Int("upserted", summary.Upserted),
		slog.Int("matched", summary.Matched),
		slog.Int("notified", summary.Notified),
		slog.Int("pushed", summary.Pushed),
		slog.Int64("elapsed_ms", summary.ElapsedMS),
	)

	return summary, nil
}

// fetchAll runs every adapter concurrently and collects their normalized
// recalls. A failed adapter logs a warning and contributes nothing.
func (s *ingestionService) fetchAll(ctx context.Context, windowStart time.Time, counts map[string]int) []*entity.Recall {
	perSource := make([][]*entity.Recall, len(s.adapters))

	var group errgroup.Group
	for i, adapter := range s.adapters {
		group.Go(func() error {
			recalls, err := adapter.Fetch(ctx, windowStart)
			if err != nil {
				s.logger.Warn("feed fetch failed",
					slog.String("source", string(adapter.Source())),
					slog.Any("error", err),
				)

				return nil
			}
			perSource[i] = recalls

			return nil
		})
	}
	// Adapter errors are swallowed above, so Wait only synchronizes.
	_ = group.Wait()

	var all []*entity.Recall
	total := 0
	for i, adapter := range s.adapters {
		counts[strings.ToLower(string(adapter.Source()))] = len(perSource[i])
		total += len(perSource[i])
		all = append(all, perSource[i]...)
	}
	counts["total"] = total

	return all
}

func (s *ingestionService) finish(ctx context.Context, job string, fetched map[string]int, summary *usecase.IngestionSummary, start time.Time) {
	summary.ElapsedMS = s.now().Sub(start).Milliseconds()

	event := &service.RunEvent{
		Job:       job,
		OK:        summary.OK,
		Fetched:   fetched,
		Upserted:  summary.Upserted,
		Matched:   summary.Matched,
		Notified:  summary.Notified,
		Pushed:    summary.Pushed,
		ElapsedMS: summary.ElapsedMS,
	}
	if err := s.publisher.PublishRunEvent(ctx, event); err != nil {
		s.logger.Warn("run event publish failed", slog.Any("error", err))
	}
}
