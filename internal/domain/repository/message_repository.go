// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for message persistence.
var (
	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")
	// ErrAttachmentNotFound is returned when an attachment is not found.
	ErrAttachmentNotFound = errors.New("attachment not found")
)

// MessageRepository defines the interface for message-related database operations.
type MessageRepository interface {
	// Create persists a new message together with its attachments and mentions.
	Create(ctx context.Context, message *entity.Message) error

	// FindByID retrieves a message by its unique ID, including attachments,
	// mentions, read receipts and reactions.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// ListByConversation retrieves one page of messages for a conversation,
	// ordered newest first. Page numbering starts at 1.
	ListByConversation(ctx context.Context, conversationID uuid.UUID, page, pageSize int) ([]*entity.Message, error)

	// AppendReadReceipt records that a user has read a message. It reports
	// whether a new receipt was created; a duplicate read returns false with
	// no error.
	AppendReadReceipt(ctx context.Context, messageID, userID uuid.UUID) (bool, error)

	// CreateReaction persists an emoji reaction on a message.
	CreateReaction(ctx context.Context, reaction *entity.Reaction) error

	// FindAttachment retrieves a single attachment descriptor by its ID.
	FindAttachment(ctx context.Context, id uuid.UUID) (*entity.Attachment, error)
}
