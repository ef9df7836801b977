package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"attic/config"
	"attic/internal/domain/entity"
	"attic/internal/domain/service"
	mockRepo "attic/internal/mocks/repository"
	mockSvc "attic/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T, batchSize int) (
	*dispatchService,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockPushTargetRepository,
	*mockSvc.MockPushGateway,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	pushTargetRepo := mockRepo.NewMockPushTargetRepository(t)
	gateway := mockSvc.NewMockPushGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Push: &config.PushConfig{PageSize: 500, BatchSize: batchSize, MaxConcurrent: 2},
	}

	dispatch := NewDispatchService(logger, cfg, notificationRepo, pushTargetRepo, gateway)

	return dispatch.(*dispatchService), notificationRepo, pushTargetRepo, gateway
}

func okTickets(n int) []service.PushTicket {
	tickets := make([]service.PushTicket, n)
	for i := range tickets {
		tickets[i] = service.PushTicket{Status: "ok"}
	}

	return tickets
}

func TestDispatchService_DispatchPending_SendsAndMarks(t *testing.T) {
	dispatch, notificationRepo, pushTargetRepo, gateway := createTestDispatchService(t, 100)

	ctx := context.Background()
	ownerID := uuid.New()
	notificationID := uuid.New()
	recallID := uuid.New()
	source := entity.SourceCPSC

	pending := []*entity.PendingPush{
		{
			NotificationID: notificationID,
			OwnerID:        ownerID,
			RecallID:       &recallID,
			RecallSource:   &source,
			Message:        "Your Acme Blender may be affected by a CPSC recall",
		},
	}

	notificationRepo.EXPECT().FindPendingPush(ctx, 500).Return(pending, nil)
	pushTargetRepo.EXPECT().FindTokensByOwners(ctx, []uuid.UUID{ownerID}).
		Return(map[uuid.UUID]string{ownerID: "ExponentPushToken[abc]"}, nil)
	gateway.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(batch []service.PushMessage) bool {
			if len(batch) != 1 {
				return false
			}
			msg := batch[0]

			return msg.To == "ExponentPushToken[abc]" &&
				msg.Title == "🚨 Recall Alert — CPSC" &&
				msg.Sound == "default" &&
				msg.Data["notificationId"] == notificationID.String()
		})).
		Return(okTickets(1), nil)
	notificationRepo.EXPECT().MarkPushSent(ctx, []uuid.UUID{notificationID}, mock.Anything).Return(nil)

	sent, err := dispatch.DispatchPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestDispatchService_DispatchPending_ChunksIntoBatches(t *testing.T) {
	dispatch, notificationRepo, pushTargetRepo, gateway := createTestDispatchService(t, 2)

	ctx := context.Background()
	ownerID := uuid.New()

	pending := make([]*entity.PendingPush, 3)
	for i := range pending {
		pending[i] = &entity.PendingPush{
			NotificationID: uuid.New(),
			OwnerID:        ownerID,
			Message:        "warranty reminder",
		}
	}

	notificationRepo.EXPECT().FindPendingPush(ctx, 500).Return(pending, nil)
	pushTargetRepo.EXPECT().FindTokensByOwners(ctx, []uuid.UUID{ownerID}).
		Return(map[uuid.UUID]string{ownerID: "token-1"}, nil)

	var (
		mu         sync.Mutex
		batchSizes []int
	)
	gateway.EXPECT().
		SendBatch(ctx, mock.Anything).
		Run(func(_ context.Context, batch []service.PushMessage) {
			mu.Lock()
			batchSizes = append(batchSizes, len(batch))
			mu.Unlock()
		}).
		Return(okTickets(2), nil).
		Times(2)
	notificationRepo.EXPECT().
		MarkPushSent(ctx, mock.MatchedBy(func(ids []uuid.UUID) bool { return len(ids) == 3 }), mock.Anything).
		Return(nil)

	sent, err := dispatch.DispatchPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	assert.ElementsMatch(t, []int{2, 1}, batchSizes)
}

func TestDispatchService_DispatchPending_TokenlessOwnersStayPending(t *testing.T) {
	dispatch, notificationRepo, pushTargetRepo, gateway := createTestDispatchService(t, 100)

	ctx := context.Background()
	withToken := uuid.New()
	withoutToken := uuid.New()
	sentNotification := uuid.New()

	pending := []*entity.PendingPush{
		{NotificationID: sentNotification, OwnerID: withToken, Message: "a"},
		{NotificationID: uuid.New(), OwnerID: withoutToken, Message: "b"},
	}

	notificationRepo.EXPECT().FindPendingPush(ctx, 500).Return(pending, nil)
	pushTargetRepo.EXPECT().FindTokensByOwners(ctx, []uuid.UUID{withToken, withoutToken}).
		Return(map[uuid.UUID]string{withToken: "token-1"}, nil)

	gateway.EXPECT().SendBatch(ctx, mock.Anything).Return(okTickets(1), nil)
	notificationRepo.EXPECT().MarkPushSent(ctx, []uuid.UUID{sentNotification}, mock.Anything).Return(nil)

	sent, err := dispatch.DispatchPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestDispatchService_DispatchPending_FailedBatchStaysPending(t *testing.T) {
	dispatch, notificationRepo, pushTargetRepo, gateway := createTestDispatchService(t, 100)

	ctx := context.Background()
	ownerID := uuid.New()

	pending := []*entity.PendingPush{
		{NotificationID: uuid.New(), OwnerID: ownerID, Message: "a"},
	}

	notificationRepo.EXPECT().FindPendingPush(ctx, 500).Return(pending, nil)
	pushTargetRepo.EXPECT().FindTokensByOwners(ctx, []uuid.UUID{ownerID}).
		Return(map[uuid.UUID]string{ownerID: "token-1"}, nil)
	gateway.EXPECT().SendBatch(ctx, mock.Anything).Return(nil, errors.New("gateway 503"))

	sent, err := dispatch.DispatchPending(ctx)

	// No MarkPushSent call: the notifications retry on the next run.
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestDispatchService_DispatchPending_NothingPending(t *testing.T) {
	dispatch, notificationRepo, _, _ := createTestDispatchService(t, 100)

	ctx := context.Background()
	notificationRepo.EXPECT().FindPendingPush(ctx, 500).Return(nil, nil)

	sent, err := dispatch.DispatchPending(ctx)

	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestDispatchService_ComposeMessage(t *testing.T) {
	dispatch, _, _, _ := createTestDispatchService(t, 100)

	notificationID := uuid.New()
	possessionID := uuid.New()
	recallID := uuid.New()
	source := entity.SourceUSDA

	t.Run("recall with known source", func(t *testing.T) {
		msg := dispatch.composeMessage(&entity.PendingPush{
			NotificationID: notificationID,
			RecallID:       &recallID,
			RecallSource:   &source,
			Message:        "body",
		}, "token-1")

		assert.Equal(t, "🚨 Recall Alert — USDA", msg.Title)
		assert.Equal(t, "body", msg.Body)
		assert.Equal(t, notificationID.String(), msg.Data["notificationId"])
		assert.NotContains(t, msg.Data, "type")
	})

	t.Run("recall with unknown source falls back to Gov", func(t *testing.T) {
		msg := dispatch.composeMessage(&entity.PendingPush{
			NotificationID: notificationID,
			RecallID:       &recallID,
			Message:        "body",
		}, "token-1")

		assert.Equal(t, "🚨 Recall Alert — Gov", msg.Title)
	})

	t.Run("warranty reminder", func(t *testing.T) {
		msg := dispatch.composeMessage(&entity.PendingPush{
			NotificationID: notificationID,
			PossessionID:   &possessionID,
			Message:        "expires soon",
		}, "token-1")

		assert.Equal(t, "📋 Warranty Reminder", msg.Title)
		assert.Equal(t, "warranty", msg.Data["type"])
		assert.Equal(t, possessionID.String(), msg.Data["possessionId"])
	})
}

func TestDispatchService_DispatchPending_MarkSentFailureReturnsCount(t *testing.T) {
	dispatch, notificationRepo, pushTargetRepo, gateway := createTestDispatchService(t, 100)

	ctx := context.Background()
	ownerID := uuid.New()

	pending := []*entity.PendingPush{
		{NotificationID: uuid.New(), OwnerID: ownerID, Message: "a"},
	}

	notificationRepo.EXPECT().FindPendingPush(ctx, 500).Return(pending, nil)
	pushTargetRepo.EXPECT().FindTokensByOwners(ctx, []uuid.UUID{ownerID}).
		Return(map[uuid.UUID]string{ownerID: "token-1"}, nil)
	gateway.EXPECT().SendBatch(ctx, mock.Anything).Return(okTickets(1), nil)
	notificationRepo.EXPECT().MarkPushSent(ctx, mock.Anything, mock.Anything).
		Return(errors.New("update failed"))

	sent, err := dispatch.DispatchPending(ctx)

	require.Error(t, err)
	assert.Equal(t, 1, sent)
}
