package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"attic/config"
	"attic/internal/domain/entity"
	"attic/internal/domain/repository"
	"attic/internal/domain/service"
	"attic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type expiryService struct {
	logger           *slog.Logger
	registryRepo     repository.RegistryRepository
	notificationRepo repository.NotificationRepository
	dispatcher       usecase.DispatchUsecase
	publisher        service.EventPublisher
	horizonDays      int
	cooldownDays     int

	now func() time.Time
}

// NewExpiryService wires the warranty-expiry reminder job. It shares the
// notification store and push dispatcher with the recall pipeline.
func NewExpiryService(
	logger *slog.Logger,
	cfg *config.Config,
	registryRepo repository.RegistryRepository,
	notificationRepo repository.NotificationRepository,
	dispatcher usecase.DispatchUsecase,
	publisher service.EventPublisher,
) usecase.ExpiryUsecase {
	return &expiryService{
		logger:           logger,
		registryRepo:     registryRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		publisher:        publisher,
		horizonDays:      cfg.Pipeline.ExpiryHorizonDays,
		cooldownDays:     cfg.Pipeline.ExpiryCooldownDays,
		now:              time.Now,
	}
}

// Run finds warranties ending inside the horizon and creates at most one
// reminder per possession per cooldown window. Per-possession failures are
// skipped; only the registry read is fatal.
func (s *expiryService) Run(ctx context.Context) (*usecase.ExpirySummary, error) {
	start := s.now()
	summary := &usecase.ExpirySummary{}

	from := startOfDay(start)
	to := from.AddDate(0, 0, s.horizonDays)

	expiring, err := s.registryRepo.ListExpiringWarranties(ctx, from, to)
	if err != nil {
		s.finish(ctx, summary, start)

		return summary, errors.Wrap(err, "failed to load expiring warranties")
	}
	summary.Checked = len(expiring)

	cooldownCutoff := start.AddDate(0, 0, -s.cooldownDays)

	for _, warranty := range expiring {
		possession := warranty.Possession

		recent, checkErr := s.notificationRepo.HasRecentExpiryNotification(ctx, possession.ID, cooldownCutoff)
		if checkErr != nil {
			s.logger.Warn("expiry cooldown check failed, skipping possession",
				slog.String("possession_id", possession.ID.String()),
				slog.Any("error", checkErr),
			)

			continue
		}
		if recent {
			// Already reminded inside the cooldown window.
			continue
		}

		notification := s.newExpiryNotification(&possession, warranty.EndDate)
		if createErr := s.notificationRepo.CreateNotification(ctx, notification); createErr != nil {
			s.logger.Warn("expiry notification insert failed, skipping",
				slog.String("possession_id", possession.ID.String()),
				slog.Any("error", createErr),
			)

			continue
		}
		summary.Notified++
	}

	pushed, err := s.dispatcher.DispatchPending(ctx)
	if err != nil {
		s.logger.Error("push dispatch failed", slog.Any("error", err))
	}
	summary.Pushed = pushed

	summary.OK = true
	s.finish(ctx, summary, start)

	s.logger.Info("expiry-check run completed",
		slog.Int("checked", summary.Checked),
		slog.Int("notified", summary.Notified),
		slog.Int("pushed", summary.Pushed),
		slog.Int64("elapsed_ms", summary.ElapsedMS),
	)

	return summary, nil
}

// newExpiryNotification composes the reminder message with an urgency tier
// based on the days remaining.
func (s *expiryService) newExpiryNotification(possession *entity.Possession, endDate time.Time) *entity.Notification {
	daysLeft := int(math.Ceil(endDate.Sub(s.now()).Hours() / 24))

	var urgency string
	switch {
	case daysLeft <= 7:
		urgency = "⚠️ Expires in 7 days or less!"
	case daysLeft <= 14:
		urgency = "Expiring in 2 weeks"
	default:
		urgency = "Expiring in 30 days"
	}

	possessionID := possession.ID

	return &entity.Notification{
		ID:           uuid.New(),
		OwnerID:      possession.OwnerID,
		PossessionID: &possessionID,
		RecallID:     nil,
		Message: fmt.Sprintf("Warranty for your %s expires on %s. %s",
			possessionLabel(possession),
			endDate.Format("January 2, 2006"),
			urgency,
		),
	}
}

func (s *expiryService) finish(ctx context.Context, summary *usecase.ExpirySummary, start time.Time) {
	summary.ElapsedMS = s.now().Sub(start).Milliseconds()

	event := &service.RunEvent{
		Job:       "expiry-check",
		OK:        summary.OK,
		Notified:  summary.Notified,
		Pushed:    summary.Pushed,
		ElapsedMS: summary.ElapsedMS,
	}
	if err := s.publisher.PublishRunEvent(ctx, event); err != nil {
		s.logger.Warn("run event publish failed", slog.Any("error", err))
	}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
