package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"attic/config"
	"attic/internal/domain/entity"
	"attic/internal/domain/service"
	mockRepo "attic/internal/mocks/repository"
	mockSvc "attic/internal/mocks/service"
	mockUC "attic/internal/mocks/usecase"
	"attic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ingestionTestDeps struct {
	adapter          *mockSvc.MockFeedAdapter
	recallRepo       *mockRepo.MockRecallRepository
	registryRepo     *mockRepo.MockRegistryRepository
	matchRepo        *mockRepo.MockMatchRepository
	notificationRepo *mockRepo.MockNotificationRepository
	dispatcher       *mockUC.MockDispatchUsecase
	publisher        *mockSvc.MockEventPublisher
}

func createTestIngestionService(t *testing.T) (usecase.IngestionUsecase, *ingestionTestDeps) {
	deps := &ingestionTestDeps{
		adapter:          mockSvc.NewMockFeedAdapter(t),
		recallRepo:       mockRepo.NewMockRecallRepository(t),
		registryRepo:     mockRepo.NewMockRegistryRepository(t),
		matchRepo:        mockRepo.NewMockMatchRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		dispatcher:       mockUC.NewMockDispatchUsecase(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Feeds:    &config.FeedsConfig{Window: 7 * 24 * time.Hour},
		Pipeline: &config.PipelineConfig{MatchWindow: 48 * time.Hour},
	}

	ingestion := NewIngestionService(
		logger,
		cfg,
		[]service.FeedAdapter{deps.adapter},
		deps.recallRepo,
		deps.registryRepo,
		deps.matchRepo,
		deps.notificationRepo,
		deps.dispatcher,
		deps.publisher,
	)

	return ingestion, deps
}

func TestIngestionService_Run_EndToEnd(t *testing.T) {
	ingestion, deps := createTestIngestionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recallID := uuid.New()
	possessionID := uuid.New()

	fetched := &entity.Recall{
		Source:     entity.SourceCPSC,
		ExternalID: "CPSC-1001",
		Title:      "Acme Blenders Recalled",
		AffectedProducts: []entity.AffectedProduct{
			{Brand: "Acme", Name: "Blender"},
		},
	}
	persisted := &entity.Recall{
		ID:               recallID,
		Source:           entity.SourceCPSC,
		ExternalID:       "CPSC-1001",
		Title:            "Acme Blenders Recalled",
		AffectedProducts: fetched.AffectedProducts,
	}
	possession := &entity.Possession{ID: possessionID, OwnerID: ownerID, Brand: "Acme", Name: "Blender Pro"}

	deps.adapter.EXPECT().Fetch(mock.Anything, mock.Anything).Return([]*entity.Recall{fetched}, nil)
	deps.adapter.EXPECT().Source().Return(entity.SourceCPSC)
	deps.recallRepo.EXPECT().UpsertRecalls(ctx, []*entity.Recall{fetched}).Return(1, nil)
	deps.recallRepo.EXPECT().FindUpdatedSince(ctx, mock.Anything).Return([]*entity.Recall{persisted}, nil)
	deps.registryRepo.EXPECT().ListPossessions(ctx).Return([]*entity.Possession{possession}, nil)
	deps.matchRepo.EXPECT().InsertMatch(ctx, possessionID, recallID).Return(true, nil)
	deps.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	deps.dispatcher.EXPECT().DispatchPending(ctx).Return(1, nil)
	deps.publisher.EXPECT().PublishRunEvent(ctx, mock.MatchedBy(func(e *service.RunEvent) bool {
		return e.Job == "ingestion" && e.OK && e.Upserted == 1 && e.Matched == 1 && e.Pushed == 1
	})).Return(nil)

	summary, err := ingestion.Run(ctx)

	require.NoError(t, err)
	assert.True(t, summary.OK)
	assert.Equal(t, 1, summary.Fetched["cpsc"])
	assert.Equal(t, 1, summary.Fetched["total"])
	assert.Equal(t, 1, summary.Upserted)
	assert.Equal(t, 1, summary.Matched)
	assert.Equal(t, 1, summary.Notified)
	assert.Equal(t, 1, summary.Pushed)
}

func TestIngestionService_Run_AdapterFailureIsSoft(t *testing.T) {
	ingestion, deps := createTestIngestionService(t)

	ctx := context.Background()

	deps.adapter.EXPECT().Fetch(mock.Anything, mock.Anything).Return(nil, errors.New("upstream 500"))
	deps.adapter.EXPECT().Source().Return(entity.SourceCPSC)
	deps.recallRepo.EXPECT().FindUpdatedSince(ctx, mock.Anything).Return(nil, nil)
	deps.dispatcher.EXPECT().DispatchPending(ctx).Return(0, nil)
	deps.publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

	summary, err := ingestion.Run(ctx)

	require.NoError(t, err)
	assert.True(t, summary.OK)
	assert.Equal(t, 0, summary.Fetched["total"])
	assert.Zero(t, summary.Upserted)
}

func TestIngestionService_Run_UpsertFailureContinuesMatching(t *testing.T) {
	ingestion, deps := createTestIngestionService(t)

	ctx := context.Background()
	fetched := &entity.Recall{Source: entity.SourceCPSC, ExternalID: "CPSC-1", Title: "T"}

	deps.adapter.EXPECT().Fetch(mock.Anything, mock.Anything).Return([]*entity.Recall{fetched}, nil)
	deps.adapter.EXPECT().Source().Return(entity.SourceCPSC)
	deps.recallRepo.EXPECT().UpsertRecalls(ctx, mock.Anything).Return(0, errors.New("insert failed"))
	// Matching still runs against previously persisted recalls.
	deps.recallRepo.EXPECT().FindUpdatedSince(ctx, mock.Anything).Return(nil, nil)
	deps.dispatcher.EXPECT().DispatchPending(ctx).Return(0, nil)
	deps.publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

	summary, err := ingestion.Run(ctx)

	require.NoError(t, err)
	assert.True(t, summary.OK)
	assert.Zero(t, summary.Upserted)
}

func TestIngestionService_Run_MatcherFailureIsFatal(t *testing.T) {
	ingestion, deps := createTestIngestionService(t)

	ctx := context.Background()

	deps.adapter.EXPECT().Fetch(mock.Anything, mock.Anything).Return(nil, nil)
	deps.adapter.EXPECT().Source().Return(entity.SourceCPSC)
	deps.recallRepo.EXPECT().FindUpdatedSince(ctx, mock.Anything).Return(nil, errors.New("db down"))
	deps.publisher.EXPECT().PublishRunEvent(ctx, mock.MatchedBy(func(e *service.RunEvent) bool {
		return e.Job == "ingestion" && !e.OK
	})).Return(nil)

	summary, err := ingestion.Run(ctx)

	require.Error(t, err)
	assert.False(t, summary.OK)
}
