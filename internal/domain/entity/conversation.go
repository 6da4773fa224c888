package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationType distinguishes the two kinds of conversation the portal supports.
type ConversationType string

const (
	// ConversationTypeGroup is a named conversation with any number of members.
	ConversationTypeGroup ConversationType = "group"
	// ConversationTypeDirect is a two-person conversation; at most one exists per pair.
	ConversationTypeDirect ConversationType = "direct"
)

// IsValid checks if the ConversationType is a valid value.
func (t ConversationType) IsValid() bool {
	return t == ConversationTypeGroup || t == ConversationTypeDirect
}

// MemberRole represents a member's role within a single conversation,
// independent of the member's program-wide Role.
type MemberRole string

const (
	// MemberRoleAdmin can add or remove members and archive the conversation.
	MemberRoleAdmin MemberRole = "admin"
	// MemberRoleMember is a regular participant.
	MemberRoleMember MemberRole = "member"
)

// IsValid checks if the MemberRole is a valid value.
func (r MemberRole) IsValid() bool {
	return r == MemberRoleAdmin || r == MemberRoleMember
}

// ConversationMember represents a user's membership in a conversation together
// with the per-conversation settings that shape notification fan-out.
type ConversationMember struct {
	ConversationID uuid.UUID  `json:"conversation_id"`
	UserID         uuid.UUID  `json:"user_id"`
	Role           MemberRole `json:"role"`
	Muted          bool       `json:"muted"`        // Suppress all notifications except mentions.
	MentionOnly    bool       `json:"mention_only"` // Notify only when mentioned.
	JoinedAt       time.Time  `json:"joined_at"`
}

// WantsNotification reports whether this member should receive a notification
// for a message, given whether the member was mentioned in it. A mention always
// notifies; it overrides both mute and mention-only settings.
func (m *ConversationMember) WantsNotification(mentioned bool) bool {
	if mentioned {
		return true
	}
	if m.Muted || m.MentionOnly {
		return false
	}

	return true
}

// Conversation represents a message thread between program members. Group
// conversations carry a name and admin-managed membership; direct conversations
// are unnamed and fixed to exactly two members.
type Conversation struct {
	ID         uuid.UUID            `json:"id"`
	Type       ConversationType     `json:"type"`
	Name       string               `json:"name,omitempty"`
	CreatedBy  uuid.UUID            `json:"created_by"`
	Members    []ConversationMember `json:"members,omitempty"`
	ArchivedAt *time.Time           `json:"archived_at,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// IsArchived reports whether the conversation has been archived.
// Archived conversations are read-only.
func (c *Conversation) IsArchived() bool {
	return c.ArchivedAt != nil
}

// Member returns the membership record for the given user, or nil when the
// user is not a member.
func (c *Conversation) Member(userID uuid.UUID) *ConversationMember {
	for i := range c.Members {
		if c.Members[i].UserID == userID {
			return &c.Members[i]
		}
	}

	return nil
}

// IsMember reports whether the given user belongs to the conversation.
func (c *Conversation) IsMember(userID uuid.UUID) bool {
	return c.Member(userID) != nil
}

// IsAdmin reports whether the given user is an admin of the conversation.
func (c *Conversation) IsAdmin(userID uuid.UUID) bool {
	m := c.Member(userID)

	return m != nil && m.Role == MemberRoleAdmin
}

// AdminCount returns the number of admin members.
func (c *Conversation) AdminCount() int {
	count := 0
	for i := range c.Members {
		if c.Members[i].Role == MemberRoleAdmin {
			count++
		}
	}

	return count
}

// MemberIDs returns the IDs of all members.
func (c *Conversation) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Members))
	for i := range c.Members {
		ids = append(ids, c.Members[i].UserID)
	}

	return ids
}

// DisplayName returns the conversation name shown in notification copy.
// Direct conversations have no stored name, so the counterpart's name is
// resolved by the caller; this falls back to a generic label.
func (c *Conversation) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Type == ConversationTypeDirect {
		return "Direct message"
	}

	return "Conversation"
}
