package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchOutcome describes what happened on one delivery channel for one
// recipient.
type DispatchOutcome string

const (
	// OutcomeDelivered means the channel accepted the notification.
	OutcomeDelivered DispatchOutcome = "delivered"
	// OutcomeSkippedPreference means the recipient opted out of the channel.
	OutcomeSkippedPreference DispatchOutcome = "skipped_preference"
	// OutcomeSkippedMuted means the recipient muted the conversation.
	OutcomeSkippedMuted DispatchOutcome = "skipped_muted"
	// OutcomeSkippedOffline means the recipient had no live session.
	OutcomeSkippedOffline DispatchOutcome = "skipped_offline"
	// OutcomeQueued means delivery was handed to the async dispatch worker.
	OutcomeQueued DispatchOutcome = "queued"
	// OutcomeFailed means the channel reported an error. Failures never
	// surface to the triggering operation.
	OutcomeFailed DispatchOutcome = "failed"
)

// ChannelResult is the outcome of one channel for one recipient.
type ChannelResult struct {
	Channel string          `json:"channel"` // live, push, email or sms
	Outcome DispatchOutcome `json:"outcome"`
	Error   string          `json:"error,omitempty"`
}

// DispatchResult is the per-recipient outcome of a fan-out.
type DispatchResult struct {
	RecipientID    uuid.UUID       `json:"recipient_id"`
	NotificationID uuid.UUID       `json:"notification_id"`
	Channels       []ChannelResult `json:"channels"`
}

// FanoutUsecase defines the interface for notification fan-out. Every trigger
// persists one notification per eligible recipient and then attempts delivery
// over the recipient's enabled channels. Channel failures are recorded in the
// result, never returned as the operation's error.
type FanoutUsecase interface {
	// OnNewMessage fans a new message out to the other conversation members,
	// honoring per-member mute and mention-only settings.
	OnNewMessage(ctx context.Context, conversation *entity.Conversation, message *entity.Message) ([]DispatchResult, error)

	// OnReaction notifies a message's sender that someone reacted to it.
	OnReaction(ctx context.Context, conversation *entity.Conversation, message *entity.Message, reaction *entity.Reaction) ([]DispatchResult, error)

	// NotifyMemberAdded notifies a user that they were added to a conversation.
	NotifyMemberAdded(ctx context.Context, conversation *entity.Conversation, actorID, memberID uuid.UUID) ([]DispatchResult, error)

	// NotifyMemberRemoved notifies a user that they were removed from a conversation.
	NotifyMemberRemoved(ctx context.Context, conversation *entity.Conversation, actorID, memberID uuid.UUID) ([]DispatchResult, error)

	// NotifyConversationArchived notifies the remaining members that a
	// conversation was archived.
	NotifyConversationArchived(ctx context.Context, conversation *entity.Conversation, actorID uuid.UUID) ([]DispatchResult, error)

	// NotifyApprovalStatus notifies a user of the decision on their registration.
	NotifyApprovalStatus(ctx context.Context, user *entity.User, approved bool) ([]DispatchResult, error)

	// DispatchChannels delivers an already persisted notification over the
	// recipient's enabled external channels. Used by the async dispatch worker.
	DispatchChannels(ctx context.Context, notification *entity.Notification, recipient *entity.User) ([]ChannelResult, error)
}
