package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"attic/config"
	"attic/internal/domain/entity"
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

func createTestExpiryService(t *testing.T) (
	usecase.ExpiryUsecase,
	*mockRepo.MockRegistryRepository,
	*mockRepo.MockNotificationRepository,
	*mockUC.MockDispatchUsecase,
	*mockSvc.MockEventPublisher,
) {
	registryRepo := mockRepo.NewMockRegistryRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	dispatcher := mockUC.NewMockDispatchUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Pipeline: &config.PipelineConfig{ExpiryHorizonDays: 30, ExpiryCooldownDays: 7},
	}

	expiry := NewExpiryService(logger, cfg, registryRepo, notificationRepo, dispatcher, publisher)

	return expiry, registryRepo, notificationRepo, dispatcher, publisher
}

func expiringWarranty(daysFromNow int) *entity.ExpiringWarranty {
	return &entity.ExpiringWarranty{
		Possession: entity.Possession{
			ID:       uuid.New(),
			OwnerID:  uuid.New(),
			Name:     "Espresso Machine",
			Brand:    "Acme",
			Category: entity.CategoryAppliances,
		},
		EndDate: time.Now().AddDate(0, 0, daysFromNow).Add(2 * time.Hour),
	}
}

func TestExpiryService_Run_CreatesReminder(t *testing.T) {
	expiry, registryRepo, notificationRepo, dispatcher, publisher := createTestExpiryService(t)

	ctx := context.Background()
	warranty := expiringWarranty(25)

	registryRepo.EXPECT().ListExpiringWarranties(ctx, mock.Anything, mock.Anything).
		Return([]*entity.ExpiringWarranty{warranty}, nil)
	notificationRepo.EXPECT().
		HasRecentExpiryNotification(ctx, warranty.Possession.ID, mock.Anything).
		Return(false, nil)
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.OwnerID == warranty.Possession.OwnerID &&
				n.RecallID == nil &&
				strings.HasPrefix(n.Message, "Warranty for your Acme Espresso Machine expires on ") &&
				strings.HasSuffix(n.Message, "Expiring in 30 days")
		})).
		Return(nil)
	dispatcher.EXPECT().DispatchPending(ctx).Return(1, nil)
	publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

	summary, err := expiry.Run(ctx)

	require.NoError(t, err)
	assert.True(t, summary.OK)
	assert.Equal(t, 1, summary.Checked)
	assert.Equal(t, 1, summary.Notified)
	assert.Equal(t, 1, summary.Pushed)
}

func TestExpiryService_Run_UrgencyTiers(t *testing.T) {
	tests := []struct {
		name        string
		daysFromNow int
		wantSuffix  string
	}{
		{name: "imminent", daysFromNow: 5, wantSuffix: "⚠️ Expires in 7 days or less!"},
		{name: "two weeks", daysFromNow: 12, wantSuffix: "Expiring in 2 weeks"},
		{name: "month out", daysFromNow: 28, wantSuffix: "Expiring in 30 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry, registryRepo, notificationRepo, dispatcher, publisher := createTestExpiryService(t)

			ctx := context.Background()
			warranty := expiringWarranty(tt.daysFromNow)

			registryRepo.EXPECT().ListExpiringWarranties(ctx, mock.Anything, mock.Anything).
				Return([]*entity.ExpiringWarranty{warranty}, nil)
			notificationRepo.EXPECT().
				HasRecentExpiryNotification(ctx, warranty.Possession.ID, mock.Anything).
				Return(false, nil)
			notificationRepo.EXPECT().
				CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
					return strings.HasSuffix(n.Message, tt.wantSuffix)
				})).
				Return(nil)
			dispatcher.EXPECT().DispatchPending(ctx).Return(0, nil)
			publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

			_, err := expiry.Run(ctx)

			require.NoError(t, err)
		})
	}
}

func TestExpiryService_Run_CooldownSuppressesReminder(t *testing.T) {
	expiry, registryRepo, notificationRepo, dispatcher, publisher := createTestExpiryService(t)

	ctx := context.Background()
	warranty := expiringWarranty(10)

	registryRepo.EXPECT().ListExpiringWarranties(ctx, mock.Anything, mock.Anything).
		Return([]*entity.ExpiringWarranty{warranty}, nil)
	notificationRepo.EXPECT().
		HasRecentExpiryNotification(ctx, warranty.Possession.ID, mock.Anything).
		Return(true, nil)
	dispatcher.EXPECT().DispatchPending(ctx).Return(0, nil)
	publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

	summary, err := expiry.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Checked)
	assert.Zero(t, summary.Notified)
}

func TestExpiryService_Run_CooldownCheckFailureSkipsPossession(t *testing.T) {
	expiry, registryRepo, notificationRepo, dispatcher, publisher := createTestExpiryService(t)

	ctx := context.Background()
	warranty := expiringWarranty(10)

	registryRepo.EXPECT().ListExpiringWarranties(ctx, mock.Anything, mock.Anything).
		Return([]*entity.ExpiringWarranty{warranty}, nil)
	notificationRepo.EXPECT().
		HasRecentExpiryNotification(ctx, warranty.Possession.ID, mock.Anything).
		Return(false, errors.New("query timeout"))
	dispatcher.EXPECT().DispatchPending(ctx).Return(0, nil)
	publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

	summary, err := expiry.Run(ctx)

	require.NoError(t, err)
	assert.Zero(t, summary.Notified)
}

func TestExpiryService_Run_RegistryFailureIsFatal(t *testing.T) {
	expiry, registryRepo, _, _, publisher := createTestExpiryService(t)

	ctx := context.Background()

	registryRepo.EXPECT().ListExpiringWarranties(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))
	publisher.EXPECT().PublishRunEvent(ctx, mock.Anything).Return(nil)

	summary, err := expiry.Run(ctx)

	require.Error(t, err)
	assert.False(t, summary.OK)
}
