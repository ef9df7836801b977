// Package impl contains the use case implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"attic/internal/domain/entity"
	"attic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const recallTitleTruncateLen = 120

// matcher scans recently updated recalls against every registered possession
// and records first-time matches. Re-running it over the same input is a
// no-op because match uniqueness, not insertion order, is the correctness
// guard.
type matcher struct {
	logger           *slog.Logger
	recallRepo       repository.RecallRepository
	registryRepo     repository.RegistryRepository
	matchRepo        repository.MatchRepository
	notificationRepo repository.NotificationRepository
	window           time.Duration

	now func() time.Time
}

func newMatcher(
	logger *slog.Logger,
	recallRepo repository.RecallRepository,
	registryRepo repository.RegistryRepository,
	matchRepo repository.MatchRepository,
	notificationRepo repository.NotificationRepository,
	window time.Duration,
) *matcher {
	return &matcher{
		logger:           logger,
		recallRepo:       recallRepo,
		registryRepo:     registryRepo,
		matchRepo:        matchRepo,
		notificationRepo: notificationRepo,
		window:           window,
		now:              time.Now,
	}
}

// matchRecentRecalls evaluates every (recent recall, possession) pair and
// inserts a match junction plus one notification per first-time match.
// Per-pair failures are skipped; only registry or recall store reads are
// fatal.
func (m *matcher) matchRecentRecalls(ctx context.Context) (matched, notified int, err error) {
	cutoff := m.now().Add(-m.window)

	recalls, err := m.recallRepo.FindUpdatedSince(ctx, cutoff)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to load recent recalls")
	}
	if len(recalls) == 0 {
		return 0, 0, nil
	}

	possessions, err := m.registryRepo.ListPossessions(ctx)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to load possession registry")
	}

	for _, recall := range recalls {
		for _, possession := range possessions {
			if !isAffected(possession, recall) {
				continue
			}

			created, insertErr := m.matchRepo.InsertMatch(ctx, possession.ID, recall.ID)
			if insertErr != nil {
				m.logger.Warn("match insert failed, skipping pair",
					slog.String("possession_id", possession.ID.String()),
					slog.String("recall_id", recall.ID.String()),
					slog.Any("error", insertErr),
				)

				continue
			}
			if !created {
				// Pair already recorded by an earlier run.
				continue
			}
			matched++

			notification := newRecallNotification(possession, recall)
			if notifyErr := m.notificationRepo.CreateNotification(ctx, notification); notifyErr != nil {
				m.logger.Warn("notification insert failed, skipping",
					slog.String("possession_id", possession.ID.String()),
					slog.String("recall_id", recall.ID.String()),
					slog.Any("error", notifyErr),
				)

				continue
			}
			notified++
		}
	}

	return matched, notified, nil
}

// isAffected applies the matching heuristic: a possession is affected iff its
// brand overlaps an affected product's brand AND (a name/model overlap OR an
// exact category match OR the recall comes from the vehicle source, whose
// records are already possession-targeted by the adapter). A possession with
// an empty brand never matches, regardless of name or category.
func isAffected(possession *entity.Possession, recall *entity.Recall) bool {
	possessionBrand := strings.ToLower(possession.Brand)
	possessionName := strings.ToLower(possession.Name)
	possessionModel := strings.ToLower(possession.Model)
	possessionCategory := strings.ToLower(possession.Category)

	var brandMatch, nameMatch, categoryMatch bool

	for _, product := range recall.AffectedProducts {
		productBrand := strings.ToLower(product.Brand)
		productName := strings.ToLower(product.Name)
		productCategory := strings.ToLower(product.Category)

		if possessionBrand != "" && productBrand != "" && containsEither(possessionBrand, productBrand) {
			brandMatch = true
		}

		if productName != "" {
			if (possessionName != "" && containsEither(possessionName, productName)) ||
				(possessionModel != "" && containsEither(possessionModel, productName)) {
				nameMatch = true
			}
		}

		if possessionCategory != "" && productCategory != "" && possessionCategory == productCategory {
			categoryMatch = true
		}
	}

	return brandMatch && (nameMatch || categoryMatch || recall.Source == entity.SourceNHTSA)
}

// containsEither reports whether either string contains the other.
// Inputs are already lower-cased.
func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// newRecallNotification composes the user-facing recall alert for a
// first-time match.
func newRecallNotification(possession *entity.Possession, recall *entity.Recall) *entity.Notification {
	possessionID := possession.ID
	recallID := recall.ID

	return &entity.Notification{
		ID:           uuid.New(),
		OwnerID:      possession.OwnerID,
		PossessionID: &possessionID,
		RecallID:     &recallID,
		Message: fmt.Sprintf("Your %s may be affected by a %s recall: %q",
			possessionLabel(possession),
			recall.Source,
			truncate(recall.Title, recallTitleTruncateLen),
		),
	}
}

// possessionLabel joins brand and name, falling back to the bare name when
// the brand is absent.
func possessionLabel(possession *entity.Possession) string {
	if possession.Brand == "" {
		return possession.Name
	}

	return possession.Brand + " " + possession.Name
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
