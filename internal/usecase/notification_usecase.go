package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for the in-app notification feed.
type NotificationUsecase interface {
	// List retrieves the caller's notifications, newest first.
	List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	// UnreadCount returns the caller's number of unread notifications.
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkRead marks one of the caller's notifications as read.
	MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error

	// MarkAllRead marks all of the caller's notifications as read and returns
	// the number updated.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
