package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes persisted notifications.
type NotificationType string

const (
	// NotificationTypeNewMessage is created for each eligible recipient of a message.
	NotificationTypeNewMessage NotificationType = "new_message"
	// NotificationTypeMention is created instead of new_message when the recipient is mentioned.
	NotificationTypeMention NotificationType = "mention"
	// NotificationTypeAddedToConversation is created when a user is added to a conversation.
	NotificationTypeAddedToConversation NotificationType = "added_to_conversation"
	// NotificationTypeRemovedFromConversation is created when a user is removed from a conversation.
	NotificationTypeRemovedFromConversation NotificationType = "removed_from_conversation"
	// NotificationTypeConversationArchived is created for members when a conversation is archived.
	NotificationTypeConversationArchived NotificationType = "conversation_archived"
	// NotificationTypeNewReaction is created for a message sender when someone reacts to it.
	NotificationTypeNewReaction NotificationType = "new_reaction"
	// NotificationTypeApprovalStatus is created when an admin approves or declines a registration.
	NotificationTypeApprovalStatus NotificationType = "approval_status"
)

// String returns the string representation of the NotificationType.
func (t NotificationType) String() string {
	return string(t)
}

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeNewMessage, NotificationTypeMention,
		NotificationTypeAddedToConversation, NotificationTypeRemovedFromConversation,
		NotificationTypeConversationArchived, NotificationTypeNewReaction,
		NotificationTypeApprovalStatus:
		return true
	default:
		return false
	}
}

// Important reports whether the notification type qualifies for SMS delivery.
// Only membership changes and approval decisions are considered important
// enough to interrupt by text message.
func (t NotificationType) Important() bool {
	return t == NotificationTypeAddedToConversation || t == NotificationTypeApprovalStatus
}

// Notification is a persisted per-recipient record of something the recipient
// should know about. Delivery over live, push, email and SMS channels happens
// after the record is stored; the record itself is the source of truth for the
// in-app notification feed.
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	RecipientID uuid.UUID        `json:"recipient_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	Data        map[string]any   `json:"data,omitempty"` // Structured payload (conversation_id, message_id, ...).
	Read        bool             `json:"read"`
	ReadAt      *time.Time       `json:"read_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// MarkRead marks the notification as read at the given time. Idempotent.
func (n *Notification) MarkRead(at time.Time) {
	if n.Read {
		return
	}
	n.Read = true
	n.ReadAt = &at
}
