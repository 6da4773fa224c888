package impl

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"portal/internal/domain/entity"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fanoutServiceFixtures holds all test dependencies for fan-out service tests.
type fanoutServiceFixtures struct {
	service          usecase.FanoutUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	userRepo         *mockRepo.MockUserRepository
	live             *mockService.MockLivePublisher
	pushSink         *mockService.MockPushSink
	emailSink        *mockService.MockEmailSink
	smsSink          *mockService.MockSMSSink
}

func createTestFanoutService(t *testing.T) fanoutServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	live := mockService.NewMockLivePublisher(t)
	pushSink := mockService.NewMockPushSink(t)
	emailSink := mockService.NewMockEmailSink(t)
	smsSink := mockService.NewMockSMSSink(t)

	service := NewFanoutService(FanoutServiceParams{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		Live:             live,
		PushSink:         pushSink,
		EmailSink:        emailSink,
		SMSSink:          smsSink,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return fanoutServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		live:             live,
		pushSink:         pushSink,
		emailSink:        emailSink,
		smsSink:          smsSink,
	}
}

// liveOnlyUser builds an approved user that only opted into in-app delivery.
func liveOnlyUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "member@example.com",
		Username: "member",
		Status:   entity.UserStatusApproved,
		Preferences: entity.NotificationPreferences{
			InApp: true,
		},
	}
}

func groupWith(members ...entity.ConversationMember) *entity.Conversation {
	return &entity.Conversation{
		ID:      uuid.New(),
		Type:    entity.ConversationTypeGroup,
		Name:    "Varsity Team",
		Members: members,
	}
}

func TestFanoutService_OnNewMessage_SkipsSenderAndMuted(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	sender := liveOnlyUser()
	alice := liveOnlyUser()
	bob := liveOnlyUser()

	conversation := groupWith(
		entity.ConversationMember{UserID: sender.ID, Role: entity.MemberRoleAdmin},
		entity.ConversationMember{UserID: alice.ID, Role: entity.MemberRoleMember},
		entity.ConversationMember{UserID: bob.ID, Role: entity.MemberRoleMember, Muted: true},
	)
	message := &entity.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       sender.ID,
		Body:           "practice moved to 6pm",
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, sender.ID).
		Return(sender, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{alice.ID}).
		Return([]*entity.User{alice}, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.live.EXPECT().
		PublishToUser(alice.ID, mock.Anything).
		Return(true)

	results, err := fx.service.OnNewMessage(ctx, conversation, message)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, bob.ID, results[0].RecipientID)
	require.Len(t, results[0].Channels, 1)
	assert.Equal(t, usecase.OutcomeSkippedMuted, results[0].Channels[0].Outcome)

	assert.Equal(t, alice.ID, results[1].RecipientID)
	require.NotEmpty(t, results[1].Channels)
	assert.Equal(t, "live", results[1].Channels[0].Channel)
	assert.Equal(t, usecase.OutcomeDelivered, results[1].Channels[0].Outcome)
}

func TestFanoutService_OnNewMessage_MentionOverridesMute(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	sender := liveOnlyUser()
	bob := liveOnlyUser()

	conversation := groupWith(
		entity.ConversationMember{UserID: sender.ID, Role: entity.MemberRoleAdmin},
		entity.ConversationMember{UserID: bob.ID, Role: entity.MemberRoleMember, Muted: true},
	)
	message := &entity.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       sender.ID,
		Body:           "@bob can you open the gym?",
		Mentions:       []uuid.UUID{bob.ID},
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, sender.ID).
		Return(sender, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{bob.ID}).
		Return([]*entity.User{bob}, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationTypeMention && n.RecipientID == bob.ID
		})).
		Return(nil)
	fx.live.EXPECT().
		PublishToUser(bob.ID, mock.Anything).
		Return(true)

	results, err := fx.service.OnNewMessage(ctx, conversation, message)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, bob.ID, results[0].RecipientID)
	assert.Equal(t, usecase.OutcomeDelivered, results[0].Channels[0].Outcome)
}

func TestFanoutService_OnNewMessage_OfflineRecipient(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	sender := liveOnlyUser()
	alice := liveOnlyUser()

	conversation := groupWith(
		entity.ConversationMember{UserID: sender.ID, Role: entity.MemberRoleAdmin},
		entity.ConversationMember{UserID: alice.ID, Role: entity.MemberRoleMember},
	)
	message := &entity.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       sender.ID,
		Body:           "anyone up for a scrimmage?",
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, sender.ID).
		Return(sender, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{alice.ID}).
		Return([]*entity.User{alice}, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.live.EXPECT().
		PublishToUser(alice.ID, mock.Anything).
		Return(false)

	results, err := fx.service.OnNewMessage(ctx, conversation, message)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, usecase.OutcomeSkippedOffline, results[0].Channels[0].Outcome)
}

func TestFanoutService_OnReaction_SelfReactionNotNotified(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	senderID := uuid.New()
	conversation := groupWith(entity.ConversationMember{UserID: senderID})
	message := &entity.Message{ID: uuid.New(), SenderID: senderID}
	reaction := &entity.Reaction{ID: uuid.New(), MessageID: message.ID, UserID: senderID, Emoji: "🔥"}

	results, err := fx.service.OnReaction(ctx, conversation, message, reaction)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFanoutService_OnReaction_NotifiesSender(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	sender := liveOnlyUser()
	reactor := liveOnlyUser()
	reactor.FirstName = "Jamie"

	conversation := groupWith(
		entity.ConversationMember{UserID: sender.ID},
		entity.ConversationMember{UserID: reactor.ID},
	)
	message := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID, SenderID: sender.ID}
	reaction := &entity.Reaction{ID: uuid.New(), MessageID: message.ID, UserID: reactor.ID, Emoji: "👍", CreatedAt: time.Now()}

	fx.userRepo.EXPECT().
		FindByID(ctx, reactor.ID).
		Return(reactor, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, sender.ID).
		Return(sender, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationTypeNewReaction && n.RecipientID == sender.ID
		})).
		Return(nil)
	fx.live.EXPECT().
		PublishToUser(sender.ID, mock.Anything).
		Return(true)

	results, err := fx.service.OnReaction(ctx, conversation, message, reaction)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, sender.ID, results[0].RecipientID)
}

func TestFanoutService_NotifyApprovalStatus(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	user := liveOnlyUser()

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationTypeApprovalStatus && n.Title == "Registration approved"
		})).
		Return(nil)
	fx.live.EXPECT().
		PublishToUser(user.ID, mock.Anything).
		Return(true)

	results, err := fx.service.NotifyApprovalStatus(ctx, user, true)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, usecase.OutcomeDelivered, results[0].Channels[0].Outcome)
}

func TestFanoutService_DispatchLive_IgnoresChannelPreferences(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	user := liveOnlyUser()
	// Opting out of every channel still leaves live sessions reachable.
	user.Preferences = entity.NotificationPreferences{}

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.live.EXPECT().
		PublishToUser(user.ID, mock.Anything).
		Return(true)

	results, err := fx.service.NotifyApprovalStatus(ctx, user, true)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotEmpty(t, results[0].Channels)
	assert.Equal(t, "live", results[0].Channels[0].Channel)
	assert.Equal(t, usecase.OutcomeDelivered, results[0].Channels[0].Outcome)
	for _, channel := range results[0].Channels[1:] {
		assert.Equal(t, usecase.OutcomeSkippedPreference, channel.Outcome)
	}
}

func TestFanoutService_NotifyMemberAdded_ReachesMutedMember(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	actor := liveOnlyUser()
	member := liveOnlyUser()

	conversation := groupWith(
		entity.ConversationMember{UserID: actor.ID, Role: entity.MemberRoleAdmin},
		entity.ConversationMember{UserID: member.ID, Role: entity.MemberRoleMember, Muted: true},
	)

	fx.userRepo.EXPECT().
		FindByID(ctx, actor.ID).
		Return(actor, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, member.ID).
		Return(member, nil)
	// A mute silences message traffic only; membership changes still notify.
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationTypeAddedToConversation && n.RecipientID == member.ID
		})).
		Return(nil)
	fx.live.EXPECT().
		PublishToUser(member.ID, mock.Anything).
		Return(true)

	results, err := fx.service.NotifyMemberAdded(ctx, conversation, actor.ID, member.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, member.ID, results[0].RecipientID)
	assert.Equal(t, usecase.OutcomeDelivered, results[0].Channels[0].Outcome)
}

func TestFanoutService_NotifyConversationArchived_ReachesMutedMember(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	actorID := uuid.New()
	member := liveOnlyUser()

	conversation := groupWith(
		entity.ConversationMember{UserID: actorID, Role: entity.MemberRoleAdmin},
		entity.ConversationMember{UserID: member.ID, Role: entity.MemberRoleMember, Muted: true},
	)

	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{member.ID}).
		Return([]*entity.User{member}, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationTypeConversationArchived && n.RecipientID == member.ID
		})).
		Return(nil)
	fx.live.EXPECT().
		PublishToUser(member.ID, mock.Anything).
		Return(true)

	results, err := fx.service.NotifyConversationArchived(ctx, conversation, actorID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, member.ID, results[0].RecipientID)
	assert.Equal(t, usecase.OutcomeDelivered, results[0].Channels[0].Outcome)
}

func TestFanoutService_NotifyOne_PersistFailureRecorded(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	user := liveOnlyUser()

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("insert failed"))

	results, err := fx.service.NotifyApprovalStatus(ctx, user, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Channels, 1)
	assert.Equal(t, usecase.OutcomeFailed, results[0].Channels[0].Outcome)
	assert.Contains(t, results[0].Channels[0].Error, "insert failed")
}

func TestFanoutService_DispatchChannels_PrunesInvalidPushTokens(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	recipient := liveOnlyUser()
	recipient.Preferences.Push = true
	recipient.Subscriptions = []entity.PushSubscription{
		{UserID: recipient.ID, Token: "token-a", Platform: "ios"},
		{UserID: recipient.ID, Token: "token-b", Platform: "web"},
	}
	notification := &entity.Notification{
		ID:          uuid.New(),
		RecipientID: recipient.ID,
		Type:        entity.NotificationTypeNewMessage,
		Title:       "New message in Varsity Team",
		Body:        "coach: see you at 6",
	}

	fx.pushSink.EXPECT().
		SendBatch(mock.Anything, []string{"token-a", "token-b"}, notification.Title, notification.Body, mock.Anything).
		Return(1, 1, []string{"token-b"}, nil)
	fx.userRepo.EXPECT().
		RemovePushSubscriptions(ctx, recipient.ID, []string{"token-b"}).
		Return(nil)

	results, err := fx.service.DispatchChannels(ctx, notification, recipient)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "push", results[0].Channel)
	assert.Equal(t, usecase.OutcomeDelivered, results[0].Outcome)
	assert.Equal(t, usecase.OutcomeSkippedPreference, results[1].Outcome)
	assert.Equal(t, usecase.OutcomeSkippedPreference, results[2].Outcome)
}

func TestFanoutService_DispatchChannels_EmailFailure(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	recipient := liveOnlyUser()
	recipient.Preferences.Email = true
	notification := &entity.Notification{
		ID:          uuid.New(),
		RecipientID: recipient.ID,
		Type:        entity.NotificationTypeNewMessage,
		Title:       "New message",
		Body:        "hello",
	}

	fx.emailSink.EXPECT().
		Send(mock.Anything, recipient.Email, notification.Title, notification.Body, "").
		Return(errors.New("smtp relay unavailable"))

	results, err := fx.service.DispatchChannels(ctx, notification, recipient)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "email", results[1].Channel)
	assert.Equal(t, usecase.OutcomeFailed, results[1].Outcome)
	assert.Contains(t, results[1].Error, "smtp relay unavailable")
}

func TestFanoutService_DispatchChannels_SMSOnlyForImportantTypes(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	recipient := liveOnlyUser()
	recipient.Preferences.SMS = true
	recipient.Phone = "+15551234567"

	routine := &entity.Notification{
		ID:          uuid.New(),
		RecipientID: recipient.ID,
		Type:        entity.NotificationTypeNewMessage,
		Title:       "New message",
		Body:        "hey",
	}

	results, err := fx.service.DispatchChannels(ctx, routine, recipient)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeSkippedPreference, results[2].Outcome)

	important := &entity.Notification{
		ID:          uuid.New(),
		RecipientID: recipient.ID,
		Type:        entity.NotificationTypeApprovalStatus,
		Title:       "Registration approved",
		Body:        "Welcome! Your account has been approved.",
	}

	fx.smsSink.EXPECT().
		Send(mock.Anything, recipient.Phone, important.Title+": "+important.Body).
		Return(nil)

	results, err = fx.service.DispatchChannels(ctx, important, recipient)
	require.NoError(t, err)
	assert.Equal(t, "sms", results[2].Channel)
	assert.Equal(t, usecase.OutcomeDelivered, results[2].Outcome)
}

func TestFanoutService_DispatchChannels_PushWithoutDevices(t *testing.T) {
	fx := createTestFanoutService(t)

	ctx := context.Background()
	recipient := liveOnlyUser()
	recipient.Preferences.Push = true
	notification := &entity.Notification{
		ID:          uuid.New(),
		RecipientID: recipient.ID,
		Type:        entity.NotificationTypeNewMessage,
		Title:       "New message",
		Body:        "hello",
	}

	results, err := fx.service.DispatchChannels(ctx, notification, recipient)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeSkippedPreference, results[0].Outcome)
	assert.Contains(t, results[0].Error, "no registered devices")
}

func TestPreview_TruncatesOnRuneBoundary(t *testing.T) {
	// An odd byte prefix puts the cut point in the middle of a two-byte rune.
	message := &entity.Message{Body: "a" + strings.Repeat("é", 100)}

	excerpt := preview("Coach", message)
	assert.True(t, utf8.ValidString(excerpt))
	assert.True(t, strings.HasSuffix(excerpt, "..."))

	message.Body = "short note"
	assert.Equal(t, "Coach: short note", preview("Coach", message))
}
