package impl

import (
	"context"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	mockUsecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service          usecase.MessageUsecase
	txManager        *mockRepo.MockTransactionManager
	messageRepo      *mockRepo.MockMessageRepository
	conversationRepo *mockRepo.MockConversationRepository
	fileStore        *mockService.MockFileStore
	live             *mockService.MockLivePublisher
	fanout           *mockUsecase.MockFanoutUsecase
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	conversationRepo := mockRepo.NewMockConversationRepository(t)
	fileStore := mockService.NewMockFileStore(t)
	live := mockService.NewMockLivePublisher(t)
	fanout := mockUsecase.NewMockFanoutUsecase(t)

	service := NewMessageService(MessageServiceParams{
		TxManager:        txManager,
		MessageRepo:      messageRepo,
		ConversationRepo: conversationRepo,
		FileStore:        fileStore,
		Live:             live,
		Fanout:           fanout,
		Logger:           newDiscardLogger(),
	})

	return messageServiceFixtures{
		service:          service,
		txManager:        txManager,
		messageRepo:      messageRepo,
		conversationRepo: conversationRepo,
		fileStore:        fileStore,
		live:             live,
		fanout:           fanout,
	}
}

func testGroupConversation(memberIDs ...uuid.UUID) *entity.Conversation {
	conversation := &entity.Conversation{
		ID:   uuid.New(),
		Type: entity.ConversationTypeGroup,
		Name: "Varsity Team",
	}
	for i, id := range memberIDs {
		role := entity.MemberRoleMember
		if i == 0 {
			role = entity.MemberRoleAdmin
		}
		conversation.Members = append(conversation.Members, entity.ConversationMember{
			ConversationID: conversation.ID,
			UserID:         id,
			Role:           role,
		})
	}

	return conversation
}

func TestMessageService_Send_EmptyMessageRejected(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	conversation := testGroupConversation(senderID)

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)

	message, err := fx.service.Send(ctx, senderID, conversation.ID, "", nil, nil)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)
}

func TestMessageService_Send_NonMemberRejected(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	conversation := testGroupConversation(uuid.New())
	outsiderID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)

	message, err := fx.service.Send(ctx, outsiderID, conversation.ID, "hello", nil, nil)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrNotMember)
}

func TestMessageService_Send_ArchivedRejected(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	conversation := testGroupConversation(senderID)
	now := time.Now()
	conversation.ArchivedAt = &now

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)

	message, err := fx.service.Send(ctx, senderID, conversation.ID, "hello", nil, nil)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrConversationArchived)
}

func TestMessageService_Send_InvalidMentionRejected(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	conversation := testGroupConversation(senderID, uuid.New())
	strangerID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)

	message, err := fx.service.Send(ctx, senderID, conversation.ID, "hi @stranger", []uuid.UUID{strangerID}, nil)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMention)
}

func TestMessageService_Send_BroadcastsAndFansOut(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	memberID := uuid.New()
	conversation := testGroupConversation(senderID, memberID)

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)
	fx.live.EXPECT().
		BroadcastToConversation(conversation.ID, mock.Anything, senderID).
		Return()
	fx.fanout.EXPECT().
		OnNewMessage(ctx, conversation, mock.AnythingOfType("*entity.Message")).
		Return(nil, nil)

	message, err := fx.service.Send(ctx, senderID, conversation.ID, "practice at 6", []uuid.UUID{memberID}, nil)
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, senderID, message.SenderID)
	assert.Equal(t, conversation.ID, message.ConversationID)
	assert.Equal(t, "practice at 6", message.Body)
	assert.Equal(t, []uuid.UUID{memberID}, message.Mentions)
}

func TestMessageService_Send_StoresAttachmentBytes(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	conversation := testGroupConversation(senderID)
	data := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.fileStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", data).
		Return(nil)
	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)
	fx.live.EXPECT().
		BroadcastToConversation(conversation.ID, mock.Anything, senderID).
		Return()
	fx.fanout.EXPECT().
		OnNewMessage(ctx, conversation, mock.AnythingOfType("*entity.Message")).
		Return(nil, nil)

	message, err := fx.service.Send(ctx, senderID, conversation.ID, "", nil, []usecase.AttachmentInput{
		{FileName: "play.png", ContentType: "image/png", Data: data},
	})
	require.NoError(t, err)
	require.Len(t, message.Attachments, 1)
	attachment := message.Attachments[0]
	assert.Equal(t, "play.png", attachment.FileName)
	assert.Equal(t, int64(len(data)), attachment.SizeBytes)
	assert.Equal(t, message.ID.String()+"/"+attachment.ID.String(), attachment.StorageKey)
}

func TestMessageService_ListPage_DefaultsAndReverses(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversation := testGroupConversation(userID)

	newest := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID}
	middle := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID}
	oldest := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID}

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.messageRepo.EXPECT().
		ListByConversation(ctx, conversation.ID, 1, 50).
		Return([]*entity.Message{newest, middle, oldest}, nil)

	messages, err := fx.service.ListPage(ctx, userID, conversation.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, oldest.ID, messages[0].ID)
	assert.Equal(t, middle.ID, messages[1].ID)
	assert.Equal(t, newest.ID, messages[2].ID)
}

func TestMessageService_ListPage_NonMemberRejected(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	conversation := testGroupConversation(uuid.New())

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)

	messages, err := fx.service.ListPage(ctx, uuid.New(), conversation.ID, 1, 20)
	assert.Nil(t, messages)
	assert.ErrorIs(t, err, domainerrors.ErrNotMember)
}

func TestMessageService_MarkRead_FirstReadNotifiesSender(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	readerID := uuid.New()
	conversation := testGroupConversation(senderID, readerID)
	message := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID, SenderID: senderID}

	fx.messageRepo.EXPECT().
		FindByID(ctx, message.ID).
		Return(message, nil)
	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.messageRepo.EXPECT().
		AppendReadReceipt(ctx, message.ID, readerID).
		Return(true, nil)
	fx.live.EXPECT().
		PublishToUser(senderID, mock.Anything).
		Return(true)

	err := fx.service.MarkRead(ctx, readerID, message.ID)
	require.NoError(t, err)
}

func TestMessageService_MarkRead_RepeatedReadIsIdempotent(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	readerID := uuid.New()
	conversation := testGroupConversation(senderID, readerID)
	message := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID, SenderID: senderID}

	fx.messageRepo.EXPECT().
		FindByID(ctx, message.ID).
		Return(message, nil)
	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.messageRepo.EXPECT().
		AppendReadReceipt(ctx, message.ID, readerID).
		Return(false, nil)

	err := fx.service.MarkRead(ctx, readerID, message.ID)
	require.NoError(t, err)
}

func TestMessageService_React_RequiresEmoji(t *testing.T) {
	fx := createTestMessageService(t)

	_, err := fx.service.React(context.Background(), uuid.New(), uuid.New(), "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMessageService_React_PersistsAndFansOut(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	reactorID := uuid.New()
	conversation := testGroupConversation(senderID, reactorID)
	message := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID, SenderID: senderID}

	fx.messageRepo.EXPECT().
		FindByID(ctx, message.ID).
		Return(message, nil)
	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.messageRepo.EXPECT().
		CreateReaction(ctx, mock.AnythingOfType("*entity.Reaction")).
		Return(nil)
	fx.fanout.EXPECT().
		OnReaction(ctx, conversation, message, mock.AnythingOfType("*entity.Reaction")).
		Return(nil, nil)

	reaction, err := fx.service.React(ctx, reactorID, message.ID, "🏀")
	require.NoError(t, err)
	require.NotNil(t, reaction)
	assert.Equal(t, reactorID, reaction.UserID)
	assert.Equal(t, message.ID, reaction.MessageID)
	assert.Equal(t, "🏀", reaction.Emoji)
}

func TestMessageService_GetAttachment_ChecksMembership(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	conversation := testGroupConversation(uuid.New())
	message := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID}
	attachment := &entity.Attachment{ID: uuid.New(), MessageID: message.ID, StorageKey: "key"}

	fx.messageRepo.EXPECT().
		FindAttachment(ctx, attachment.ID).
		Return(attachment, nil)
	fx.messageRepo.EXPECT().
		FindByID(ctx, message.ID).
		Return(message, nil)
	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)

	_, _, err := fx.service.GetAttachment(ctx, uuid.New(), attachment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotMember)
}

func TestMessageService_GetAttachment_LoadsBytes(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversation := testGroupConversation(userID)
	message := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID}
	attachment := &entity.Attachment{
		ID:          uuid.New(),
		MessageID:   message.ID,
		FileName:    "roster.pdf",
		ContentType: "application/pdf",
		StorageKey:  message.ID.String() + "/att",
	}

	fx.messageRepo.EXPECT().
		FindAttachment(ctx, attachment.ID).
		Return(attachment, nil)
	fx.messageRepo.EXPECT().
		FindByID(ctx, message.ID).
		Return(message, nil)
	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.fileStore.EXPECT().
		Load(ctx, attachment.StorageKey).
		Return([]byte("pdf bytes"), nil)

	got, data, err := fx.service.GetAttachment(ctx, userID, attachment.ID)
	require.NoError(t, err)
	assert.Equal(t, attachment.ID, got.ID)
	assert.Equal(t, []byte("pdf bytes"), data)
}

func TestMessageService_GetAttachment_NotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	attachmentID := uuid.New()

	fx.messageRepo.EXPECT().
		FindAttachment(ctx, attachmentID).
		Return(nil, repository.ErrAttachmentNotFound)

	_, _, err := fx.service.GetAttachment(ctx, uuid.New(), attachmentID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
