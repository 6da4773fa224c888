package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	txManager        repository.TransactionManager
	messageRepo      repository.MessageRepository
	conversationRepo repository.ConversationRepository
	fileStore        service.FileStore
	live             service.LivePublisher
	fanout           usecase.FanoutUsecase
	logger           *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	MessageRepo      repository.MessageRepository
	ConversationRepo repository.ConversationRepository
	FileStore        service.FileStore
	Live             service.LivePublisher
	Fanout           usecase.FanoutUsecase
	Logger           *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		txManager:        params.TxManager,
		messageRepo:      params.MessageRepo,
		conversationRepo: params.ConversationRepo,
		fileStore:        params.FileStore,
		live:             params.Live,
		fanout:           params.Fanout,
		logger:           params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send persists a new message and triggers fan-out to the other members.
func (srv *messageService) Send(ctx context.Context, senderID, conversationID uuid.UUID, body string, mentions []uuid.UUID, attachments []usecase.AttachmentInput) (*entity.Message, error) {
	conversation, err := srv.loadConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.IsMember(senderID) {
		return nil, errors.Wrap(domainerrors.ErrNotMember, "cannot send message")
	}
	if conversation.IsArchived() {
		return nil, errors.Wrap(domainerrors.ErrConversationArchived, "cannot send message")
	}
	if body == "" && len(attachments) == 0 {
		return nil, errors.Wrap(domainerrors.ErrEmptyMessage, "cannot send message")
	}

	// Mentions must point at current members; a stale mention is a client bug.
	for _, mentionID := range mentions {
		if !conversation.IsMember(mentionID) {
			return nil, domainerrors.ErrInvalidMention.WrapMessage("mentioned user " + mentionID.String() + " is not a member")
		}
	}

	now := time.Now()
	message := &entity.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		Mentions:       mentions,
		CreatedAt:      now,
	}

	// Attachment bytes go to the blob store before the descriptor row exists;
	// an orphaned blob is harmless, a dangling descriptor is not.
	for _, input := range attachments {
		attachment := entity.Attachment{
			ID:          uuid.New(),
			MessageID:   message.ID,
			FileName:    input.FileName,
			ContentType: input.ContentType,
			SizeBytes:   int64(len(input.Data)),
			CreatedAt:   now,
		}
		attachment.StorageKey = message.ID.String() + "/" + attachment.ID.String()

		if err := srv.fileStore.Save(ctx, attachment.StorageKey, input.ContentType, input.Data); err != nil {
			return nil, errors.Wrap(err, "failed to store attachment")
		}
		message.Attachments = append(message.Attachments, attachment)
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to persist message")
	}

	// Everyone in the room sees the message immediately, mute settings only
	// gate notifications.
	srv.live.BroadcastToConversation(conversationID, service.LiveEvent{
		Type:    "newMessage",
		Payload: message,
	}, senderID)

	if _, err := srv.fanout.OnNewMessage(ctx, conversation, message); err != nil {
		srv.log(ctx).Error("Failed to fan out message notifications", slog.Any("messageID", message.ID), slog.Any("error", err))
	}

	return message, nil
}

// ListPage retrieves one page of history. The repository returns newest first;
// the page is reversed so clients render oldest first.
func (srv *messageService) ListPage(ctx context.Context, userID, conversationID uuid.UUID, page, pageSize int) ([]*entity.Message, error) {
	conversation, err := srv.loadConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.IsMember(userID) {
		return nil, errors.Wrap(domainerrors.ErrNotMember, "cannot read messages")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	messages, err := srv.messageRepo.ListByConversation(ctx, conversationID, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// MarkRead records a read receipt. Repeated reads are idempotent; only the
// first read produces a messageRead event for the sender.
func (srv *messageService) MarkRead(ctx context.Context, userID, messageID uuid.UUID) error {
	message, err := srv.loadMessage(ctx, messageID)
	if err != nil {
		return err
	}

	conversation, err := srv.loadConversation(ctx, message.ConversationID)
	if err != nil {
		return err
	}
	if !conversation.IsMember(userID) {
		return errors.Wrap(domainerrors.ErrNotMember, "cannot mark message read")
	}

	created, err := srv.messageRepo.AppendReadReceipt(ctx, messageID, userID)
	if err != nil {
		return errors.Wrap(err, "failed to append read receipt")
	}
	if !created || userID == message.SenderID {
		return nil
	}

	srv.live.PublishToUser(message.SenderID, service.LiveEvent{
		Type: "messageRead",
		Payload: map[string]any{
			"message_id":      messageID,
			"conversation_id": message.ConversationID,
			"reader_id":       userID,
		},
	})

	return nil
}

// React attaches an emoji reaction to a message and notifies its sender.
func (srv *messageService) React(ctx context.Context, userID, messageID uuid.UUID, emoji string) (*entity.Reaction, error) {
	if emoji == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("reaction requires an emoji")
	}

	message, err := srv.loadMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	conversation, err := srv.loadConversation(ctx, message.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.IsMember(userID) {
		return nil, errors.Wrap(domainerrors.ErrNotMember, "cannot react to message")
	}
	if conversation.IsArchived() {
		return nil, errors.Wrap(domainerrors.ErrConversationArchived, "cannot react to message")
	}

	reaction := &entity.Reaction{
		ID:        uuid.New(),
		MessageID: messageID,
		UserID:    userID,
		Emoji:     emoji,
		CreatedAt: time.Now(),
	}
	if err := srv.messageRepo.CreateReaction(ctx, reaction); err != nil {
		return nil, errors.Wrap(err, "failed to persist reaction")
	}

	if _, err := srv.fanout.OnReaction(ctx, conversation, message, reaction); err != nil {
		srv.log(ctx).Error("Failed to fan out reaction notification", slog.Any("messageID", messageID), slog.Any("error", err))
	}

	return reaction, nil
}

// GetAttachment loads an attachment after verifying conversation membership.
func (srv *messageService) GetAttachment(ctx context.Context, userID, attachmentID uuid.UUID) (*entity.Attachment, []byte, error) {
	attachment, err := srv.messageRepo.FindAttachment(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAttachmentNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrNotFound, "attachment lookup failed")
		}

		return nil, nil, errors.Wrap(err, "failed to find attachment")
	}

	message, err := srv.loadMessage(ctx, attachment.MessageID)
	if err != nil {
		return nil, nil, err
	}

	conversation, err := srv.loadConversation(ctx, message.ConversationID)
	if err != nil {
		return nil, nil, err
	}
	if !conversation.IsMember(userID) {
		return nil, nil, errors.Wrap(domainerrors.ErrNotMember, "cannot download attachment")
	}

	data, err := srv.fileStore.Load(ctx, attachment.StorageKey)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load attachment bytes")
	}

	return attachment, data, nil
}

func (srv *messageService) loadConversation(ctx context.Context, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrConversationNotFound, "conversation lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	return conversation, nil
}

func (srv *messageService) loadMessage(ctx context.Context, messageID uuid.UUID) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMessageNotFound, "message lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find message")
	}

	return message, nil
}
