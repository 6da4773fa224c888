package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// AttachmentInput carries one uploaded file for a new message.
type AttachmentInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// MessageUsecase defines the interface for the message store use cases.
type MessageUsecase interface {
	// Send persists a new message and triggers notification fan-out to the
	// other members. Mentions must reference conversation members. A message
	// with neither body nor attachments is rejected.
	Send(ctx context.Context, senderID, conversationID uuid.UUID, body string, mentions []uuid.UUID, attachments []AttachmentInput) (*entity.Message, error)

	// ListPage retrieves one page of conversation history. Pages are counted
	// from the newest message; within a page, messages are returned oldest
	// first for display. Page numbering starts at 1.
	ListPage(ctx context.Context, userID, conversationID uuid.UUID, page, pageSize int) ([]*entity.Message, error)

	// MarkRead records a read receipt for the caller. Repeated reads are
	// idempotent; only the first read notifies the sender.
	MarkRead(ctx context.Context, userID, messageID uuid.UUID) error

	// React attaches an emoji reaction to a message and notifies its sender.
	React(ctx context.Context, userID, messageID uuid.UUID, emoji string) (*entity.Reaction, error)

	// GetAttachment loads an attachment's descriptor and bytes after checking
	// that the caller is a member of the owning conversation.
	GetAttachment(ctx context.Context, userID, attachmentID uuid.UUID) (*entity.Attachment, []byte, error)
}
