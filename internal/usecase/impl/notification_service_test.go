package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification feed tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
	}
}

func TestNotificationService_List_ClampsPagination(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	expected := []*entity.Notification{
		{ID: uuid.New(), RecipientID: recipientID, Type: entity.NotificationTypeNewMessage},
	}

	// Out-of-range limit and negative offset fall back to defaults.
	fx.notificationRepo.EXPECT().
		ListByRecipient(ctx, recipientID, false, 50, 0).
		Return(expected, nil)

	notifications, err := fx.service.List(ctx, recipientID, false, 500, -3)
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_List_UnreadOnly(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.notificationRepo.EXPECT().
		ListByRecipient(ctx, recipientID, true, 20, 40).
		Return([]*entity.Notification{}, nil)

	notifications, err := fx.service.List(ctx, recipientID, true, 20, 40)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.notificationRepo.EXPECT().
		UnreadCount(ctx, recipientID).
		Return(int64(7), nil)

	count, err := fx.service.UnreadCount(ctx, recipientID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, notificationID, recipientID).
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, recipientID, notificationID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, notificationID, recipientID).
		Return(nil)

	err := fx.service.MarkRead(ctx, recipientID, notificationID)
	require.NoError(t, err)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkAllRead(ctx, recipientID).
		Return(int64(12), nil)

	updated, err := fx.service.MarkAllRead(ctx, recipientID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), updated)
}

func TestNotificationService_MarkAllRead_RepoError(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkAllRead(ctx, recipientID).
		Return(int64(0), errors.New("database gone"))

	updated, err := fx.service.MarkAllRead(ctx, recipientID)
	assert.Error(t, err)
	assert.Zero(t, updated)
	assert.Contains(t, err.Error(), "failed to mark all notifications read")
}
