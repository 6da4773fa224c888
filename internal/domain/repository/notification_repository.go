// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new notification record.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByRecipient retrieves notifications for a recipient, newest first.
	// When unreadOnly is set, read notifications are filtered out.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	// UnreadCount returns the number of unread notifications for a recipient.
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkRead marks a single notification as read. The recipient ID guards
	// against marking another user's notification.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error

	// MarkAllRead marks every unread notification of a recipient as read and
	// returns the number of records updated.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
