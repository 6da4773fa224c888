package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// ConversationUsecase defines the interface for conversation lifecycle and
// membership management use cases.
type ConversationUsecase interface {
	// CreateGroup creates a named group conversation. The creator becomes the
	// sole initial admin; the listed members join as regular members and are
	// notified of the addition.
	CreateGroup(ctx context.Context, creatorID uuid.UUID, name string, memberIDs []uuid.UUID) (*entity.Conversation, error)

	// GetOrCreateDirect returns the direct conversation between the caller and
	// the other user, creating it when none exists. At most one direct
	// conversation exists per pair.
	GetOrCreateDirect(ctx context.Context, userID, otherID uuid.UUID) (*entity.Conversation, error)

	// Get retrieves a conversation the caller is a member of.
	Get(ctx context.Context, userID, conversationID uuid.UUID) (*entity.Conversation, error)

	// ListForUser retrieves the caller's conversations, most recently active first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// AddMember adds a user to a group conversation. Admin only. The new
	// member is notified of the addition.
	AddMember(ctx context.Context, actorID, conversationID, memberID uuid.UUID) error

	// RemoveMember removes a member from a group conversation. Admins can
	// remove anyone but the last admin; a member can always remove themselves.
	RemoveMember(ctx context.Context, actorID, conversationID, memberID uuid.UUID) error

	// UpdateMemberSettings updates the caller's own mute and mention-only
	// flags for a conversation.
	UpdateMemberSettings(ctx context.Context, userID, conversationID uuid.UUID, muted, mentionOnly bool) error

	// Archive archives a group conversation, making it read-only. Admin only.
	// Remaining members are notified.
	Archive(ctx context.Context, actorID, conversationID uuid.UUID) error

	// GenerateInviteQR renders a QR code that lets another member join the
	// conversation. Admin only.
	GenerateInviteQR(ctx context.Context, actorID, conversationID uuid.UUID) ([]byte, error)

	// JoinByInvite adds the caller to the conversation encoded in the QR data.
	JoinByInvite(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Conversation, error)
}
