package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attachment represents a file attached to a message. The bytes live in the
// configured blob store; the entity carries only the descriptor.
type Attachment struct {
	ID          uuid.UUID `json:"id"`
	MessageID   uuid.UUID `json:"message_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StorageKey  string    `json:"storage_key"` // Key of the object in the blob store.
	CreatedAt   time.Time `json:"created_at"`
}

// ReadReceipt records that a user has read a message.
type ReadReceipt struct {
	MessageID uuid.UUID `json:"message_id"`
	UserID    uuid.UUID `json:"user_id"`
	ReadAt    time.Time `json:"read_at"`
}

// Reaction represents an emoji reaction attached to a message.
type Reaction struct {
	ID        uuid.UUID `json:"id"`
	MessageID uuid.UUID `json:"message_id"`
	UserID    uuid.UUID `json:"user_id"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a single entry in a conversation. Mentions hold the IDs of
// members explicitly called out in the body; they are validated against the
// conversation membership at send time.
type Message struct {
	ID             uuid.UUID    `json:"id"`
	ConversationID uuid.UUID    `json:"conversation_id"`
	SenderID       uuid.UUID    `json:"sender_id"`
	Body           string       `json:"body"`
	Mentions       []uuid.UUID  `json:"mentions,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	ReadBy         []ReadReceipt `json:"read_by,omitempty"`
	Reactions      []Reaction   `json:"reactions,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

// IsEmpty reports whether the message carries neither body text nor attachments.
// Such messages are rejected at send time.
func (m *Message) IsEmpty() bool {
	return m.Body == "" && len(m.Attachments) == 0
}

// MentionsUser reports whether the message explicitly mentions the given user.
func (m *Message) MentionsUser(userID uuid.UUID) bool {
	for _, id := range m.Mentions {
		if id == userID {
			return true
		}
	}

	return false
}

// ReadByUser reports whether the given user has already read the message.
func (m *Message) ReadByUser(userID uuid.UUID) bool {
	for i := range m.ReadBy {
		if m.ReadBy[i].UserID == userID {
			return true
		}
	}

	return false
}
