package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"attic/internal/domain/entity"
	mockRepo "attic/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMatcher(t *testing.T) (
	*matcher,
	*mockRepo.MockRecallRepository,
	*mockRepo.MockRegistryRepository,
	*mockRepo.MockMatchRepository,
	*mockRepo.MockNotificationRepository,
) {
	recallRepo := mockRepo.NewMockRecallRepository(t)
	registryRepo := mockRepo.NewMockRegistryRepository(t)
	matchRepo := mockRepo.NewMockMatchRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := newMatcher(logger, recallRepo, registryRepo, matchRepo, notificationRepo, 48*time.Hour)

	return m, recallRepo, registryRepo, matchRepo, notificationRepo
}

func TestIsAffected(t *testing.T) {
	tests := []struct {
		name       string
		possession *entity.Possession
		recall     *entity.Recall
		want       bool
	}{
		{
			name:       "brand and name overlap",
			possession: &entity.Possession{Brand: "Acme", Name: "Blender Pro 3000"},
			recall: &entity.Recall{
				Source: entity.SourceCPSC,
				AffectedProducts: []entity.AffectedProduct{
					{Brand: "ACME Corp", Name: "Blender"},
				},
			},
			want: true,
		},
		{
			name:       "brand and category match",
			possession: &entity.Possession{Brand: "Acme", Name: "Mini Fridge", Category: entity.CategoryAppliances},
			recall: &entity.Recall{
				Source: entity.SourceCPSC,
				AffectedProducts: []entity.AffectedProduct{
					{Brand: "Acme", Name: "Countertop Oven", Category: "appliances"},
				},
			},
			want: true,
		},
		{
			name:       "brand alone is not enough",
			possession: &entity.Possession{Brand: "Acme", Name: "Toaster", Category: entity.CategoryAppliances},
			recall: &entity.Recall{
				Source: entity.SourceCPSC,
				AffectedProducts: []entity.AffectedProduct{
					{Brand: "Acme", Name: "Lawn Mower", Category: entity.CategoryTools},
				},
			},
			want: false,
		},
		{
			name:       "name overlap without brand overlap",
			possession: &entity.Possession{Brand: "Initech", Name: "Blender"},
			recall: &entity.Recall{
				Source: entity.SourceCPSC,
				AffectedProducts: []entity.AffectedProduct{
					{Brand: "Acme", Name: "Blender"},
				},
			},
			want: false,
		},
		{
			name:       "empty possession brand never matches",
			possession: &entity.Possession{Name: "Blender", Category: entity.CategoryAppliances},
			recall: &entity.Recall{
				Source: entity.SourceCPSC,
				AffectedProducts: []entity.AffectedProduct{
					{Brand: "Acme", Name: "Blender", Category: entity.CategoryAppliances},
				},
			},
			want: false,
		},
		{
			name:       "empty product brand never matches",
			possession: &entity.Possession{Brand: "Acme", Name: "Blender"},
			recall: &entity.Recall{
				Source: entity.SourceCPSC,
				AffectedProducts: []entity.AffectedProduct{
					{Name: "Blender"},
				},
			},
			want: false,
		},
		{
			name:       "vehicle source needs brand only",
			possession: &entity.Possession{Brand: "Toyozda", Name: "My car", Category: entity.CategoryVehicles},
			recall: &entity.Recall{
				Source: entity.SourceNHTSA,
				AffectedProducts: []entity.AffectedProduct{
					{Brand: "TOYOZDA", Name: "Brake assembly", Category: entity.CategoryVehicles},
				},
			},
			want: true,
		},
		{
			name:       "model field matches product name",
			possession: &entity.Possession{Brand: "Acme", Name: "Kitchen thing", Model: "BL-3000"},
			recall: &entity.Recall{
				Source: entity.SourceCPSC,
				AffectedProducts: []entity.AffectedProduct{
					{Brand: "Acme", Name: "bl-3000"},
				},
			},
			want: true,
		},
		{
			name:       "category match is exact not substring",
			possession: &entity.Possession{Brand: "Acme", Name: "Gadget", Category: "Toys"},
			recall: &entity.Recall{
				Source: entity.SourceCPSC,
				AffectedProducts: []entity.AffectedProduct{
					{Brand: "Acme", Name: "Widget", Category: "Toys & Games"},
				},
			},
			want: false,
		},
		{
			name:       "no affected products",
			possession: &entity.Possession{Brand: "Acme", Name: "Blender"},
			recall:     &entity.Recall{Source: entity.SourceCPSC},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAffected(tt.possession, tt.recall))
		})
	}
}

func TestMatcher_MatchRecentRecalls_CreatesMatchAndNotification(t *testing.T) {
	m, recallRepo, registryRepo, matchRepo, notificationRepo := createTestMatcher(t)

	ctx := context.Background()
	ownerID := uuid.New()
	possession := &entity.Possession{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Brand:   "Acme",
		Name:    "Blender Pro",
	}
	recall := &entity.Recall{
		ID:     uuid.New(),
		Source: entity.SourceCPSC,
		Title:  "Acme Blenders Recalled Due to Laceration Hazard",
		AffectedProducts: []entity.AffectedProduct{
			{Brand: "Acme", Name: "Blender"},
		},
	}

	recallRepo.EXPECT().FindUpdatedSince(ctx, mock.Anything).Return([]*entity.Recall{recall}, nil)
	registryRepo.EXPECT().ListPossessions(ctx).Return([]*entity.Possession{possession}, nil)
	matchRepo.EXPECT().InsertMatch(ctx, possession.ID, recall.ID).Return(true, nil)
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.OwnerID == ownerID &&
				n.RecallID != nil && *n.RecallID == recall.ID &&
				n.Message == `Your Acme Blender Pro may be affected by a CPSC recall: "Acme Blenders Recalled Due to Laceration Hazard"`
		})).
		Return(nil)

	matched, notified, err := m.matchRecentRecalls(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, matched)
	assert.Equal(t, 1, notified)
}

func TestMatcher_MatchRecentRecalls_ExistingPairIsSilent(t *testing.T) {
	m, recallRepo, registryRepo, matchRepo, _ := createTestMatcher(t)

	ctx := context.Background()
	possession := &entity.Possession{ID: uuid.New(), OwnerID: uuid.New(), Brand: "Acme", Name: "Blender"}
	recall := &entity.Recall{
		ID:     uuid.New(),
		Source: entity.SourceCPSC,
		AffectedProducts: []entity.AffectedProduct{
			{Brand: "Acme", Name: "Blender"},
		},
	}

	recallRepo.EXPECT().FindUpdatedSince(ctx, mock.Anything).Return([]*entity.Recall{recall}, nil)
	registryRepo.EXPECT().ListPossessions(ctx).Return([]*entity.Possession{possession}, nil)
	matchRepo.EXPECT().InsertMatch(ctx, possession.ID, recall.ID).Return(false, nil)

	matched, notified, err := m.matchRecentRecalls(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, matched)
	assert.Equal(t, 0, notified)
}

func TestMatcher_MatchRecentRecalls_InsertFailureSkipsPair(t *testing.T) {
	m, recallRepo, registryRepo, matchRepo, _ := createTestMatcher(t)

	ctx := context.Background()
	possession := &entity.Possession{ID: uuid.New(), OwnerID: uuid.New(), Brand: "Acme", Name: "Blender"}
	recall := &entity.Recall{
		ID:     uuid.New(),
		Source: entity.SourceCPSC,
		AffectedProducts: []entity.AffectedProduct{
			{Brand: "Acme", Name: "Blender"},
		},
	}

	recallRepo.EXPECT().FindUpdatedSince(ctx, mock.Anything).Return([]*entity.Recall{recall}, nil)
	registryRepo.EXPECT().ListPossessions(ctx).Return([]*entity.Possession{possession}, nil)
	matchRepo.EXPECT().InsertMatch(ctx, possession.ID, recall.ID).Return(false, errors.New("connection reset"))

	matched, notified, err := m.matchRecentRecalls(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, matched)
	assert.Equal(t, 0, notified)
}

func TestMatcher_MatchRecentRecalls_NoRecentRecalls(t *testing.T) {
	m, recallRepo, _, _, _ := createTestMatcher(t)

	ctx := context.Background()
	recallRepo.EXPECT().FindUpdatedSince(ctx, mock.Anything).Return(nil, nil)

	matched, notified, err := m.matchRecentRecalls(ctx)

	require.NoError(t, err)
	assert.Zero(t, matched)
	assert.Zero(t, notified)
}

func TestMatcher_MatchRecentRecalls_RecallReadFailureIsFatal(t *testing.T) {
	m, recallRepo, _, _, _ := createTestMatcher(t)

	ctx := context.Background()
	recallRepo.EXPECT().FindUpdatedSince(ctx, mock.Anything).Return(nil, errors.New("db down"))

	_, _, err := m.matchRecentRecalls(ctx)

	require.Error(t, err)
}

func TestNewRecallNotification_TruncatesLongTitles(t *testing.T) {
	possession := &entity.Possession{ID: uuid.New(), OwnerID: uuid.New(), Name: "Crib"}

	longTitle := ""
	for range 30 {
		longTitle += "recall"
	}
	recallID := uuid.New()
	recall := &entity.Recall{ID: recallID, Source: entity.SourceFDA, Title: longTitle}

	notification := newRecallNotification(possession, recall)

	// Brand absent, so the label is the bare name.
	assert.Contains(t, notification.Message, "Your Crib may be affected by a FDA recall")
	assert.NotContains(t, notification.Message, longTitle)
	require.NotNil(t, notification.PossessionID)
	assert.Equal(t, possession.ID, *notification.PossessionID)
}
