package service

import (
	"github.com/google/uuid"
)

// LiveEvent is a single realtime event pushed to connected sessions.
type LiveEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// LivePublisher defines the interface for delivering realtime events to
// connected websocket sessions. Implementations hold in-memory connection
// state only; delivery to offline users is a no-op.
type LivePublisher interface {
	// PublishToUser delivers an event to every live session of a user.
	// Returns false when the user has no live session.
	PublishToUser(userID uuid.UUID, event LiveEvent) bool

	// BroadcastToConversation delivers an event to every session subscribed to
	// the conversation room, excluding the given user IDs.
	BroadcastToConversation(conversationID uuid.UUID, event LiveEvent, exclude ...uuid.UUID)

	// SubscribeUser subscribes every live session of a user to the
	// conversation room. A no-op for offline users.
	SubscribeUser(conversationID, userID uuid.UUID)

	// UnsubscribeUser removes every live session of a user from the
	// conversation room.
	UnsubscribeUser(conversationID, userID uuid.UUID)

	// IsOnline reports whether the user currently has at least one live session.
	IsOnline(userID uuid.UUID) bool
}
