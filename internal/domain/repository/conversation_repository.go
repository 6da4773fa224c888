// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for conversation persistence.
var (
	// ErrConversationNotFound is returned when a conversation is not found.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrMemberNotFound is returned when a membership record is not found.
	ErrMemberNotFound = errors.New("conversation member not found")
	// ErrMemberExists is returned when adding a user who is already a member.
	ErrMemberExists = errors.New("conversation member already exists")
)

// ConversationRepository defines the interface for conversation-related database operations.
type ConversationRepository interface {
	// Create persists a new conversation together with its initial members.
	Create(ctx context.Context, conversation *entity.Conversation) error

	// FindByID retrieves a conversation by its unique ID, including members.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// FindByUser retrieves all conversations the given user belongs to,
	// ordered by most recent activity.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// FindDirectBetween retrieves the direct conversation between two users,
	// or ErrConversationNotFound when none exists.
	FindDirectBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.Conversation, error)

	// LockByID retrieves a conversation by ID with a row-level write lock.
	// Only meaningful inside a transaction.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// AddMember persists a new membership record.
	AddMember(ctx context.Context, member *entity.ConversationMember) error

	// RemoveMember deletes a membership record.
	RemoveMember(ctx context.Context, conversationID, userID uuid.UUID) error

	// UpdateMemberSettings updates the mute and mention-only flags of a membership.
	UpdateMemberSettings(ctx context.Context, conversationID, userID uuid.UUID, muted, mentionOnly bool) error

	// Archive marks a conversation as archived.
	Archive(ctx context.Context, id uuid.UUID) error
}
