package postgres

import (
	"context"
	"encoding/json"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new message together with its attachments and mentions.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM, err := fromMessageDomain(message)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid conversation or sender reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	// Update the entity with generated values
	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	for i := range messageM.Attachments {
		message.Attachments[i].ID = messageM.Attachments[i].ID
		message.Attachments[i].MessageID = messageM.Attachments[i].MessageID
		message.Attachments[i].CreatedAt = messageM.Attachments[i].CreatedAt
	}

	return nil
}

// FindByID retrieves a message by its unique ID, including attachments,
// mentions, read receipts and reactions.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Preload("Attachments").
		Preload("ReadReceipts").
		Preload("Reactions").
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by id")
	}

	return toMessageDomain(&messageM)
}

// ListByConversation retrieves one page of messages for a conversation,
// ordered newest first. Page numbering starts at 1.
func (repo *messageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID, page, pageSize int) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	offset := (page - 1) * pageSize
	if err := repo.db.WithContext(ctx).
		Preload("Attachments").
		Preload("ReadReceipts").
		Preload("Reactions").
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages by conversation")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		message, err := toMessageDomain(messageM)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// AppendReadReceipt records that a user has read a message. A duplicate read
// is absorbed by the composite primary key and reported as created=false.
func (repo *messageRepository) AppendReadReceipt(ctx context.Context, messageID, userID uuid.UUID) (bool, error) {
	receiptM := model.ReadReceiptModel{
		MessageID: messageID,
		UserID:    userID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&receiptM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrMessageNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to append read receipt")
	}

	return result.RowsAffected > 0, nil
}

// CreateReaction persists an emoji reaction on a message.
func (repo *messageRepository) CreateReaction(ctx context.Context, reaction *entity.Reaction) error {
	reactionM := model.ReactionModel{
		ID:        reaction.ID,
		MessageID: reaction.MessageID,
		UserID:    reaction.UserID,
		Emoji:     reaction.Emoji,
	}

	if err := repo.db.WithContext(ctx).Create(&reactionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Reacting twice with the same emoji is idempotent.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMessageNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reaction")
	}

	reaction.ID = reactionM.ID
	reaction.CreatedAt = reactionM.CreatedAt

	return nil
}

// FindAttachment retrieves a single attachment descriptor by its ID.
func (repo *messageRepository) FindAttachment(ctx context.Context, id uuid.UUID) (*entity.Attachment, error) {
	var attachmentM model.AttachmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&attachmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttachmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find attachment by id")
	}

	return toAttachmentDomain(attachmentM), nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) (*entity.Message, error) {
	if data == nil {
		return nil, nil
	}

	var mentions []uuid.UUID
	if len(data.Mentions) > 0 {
		if err := json.Unmarshal(data.Mentions, &mentions); err != nil {
			return nil, errors.Wrap(err, "failed to decode message mentions")
		}
	}

	attachments := make([]entity.Attachment, 0, len(data.Attachments))
	for _, attachmentM := range data.Attachments {
		attachments = append(attachments, *toAttachmentDomain(attachmentM))
	}

	readBy := make([]entity.ReadReceipt, 0, len(data.ReadReceipts))
	for _, receiptM := range data.ReadReceipts {
		readBy = append(readBy, entity.ReadReceipt{
			MessageID: receiptM.MessageID,
			UserID:    receiptM.UserID,
			ReadAt:    receiptM.ReadAt,
		})
	}

	reactions := make([]entity.Reaction, 0, len(data.Reactions))
	for _, reactionM := range data.Reactions {
		reactions = append(reactions, entity.Reaction{
			ID:        reactionM.ID,
			MessageID: reactionM.MessageID,
			UserID:    reactionM.UserID,
			Emoji:     reactionM.Emoji,
			CreatedAt: reactionM.CreatedAt,
		})
	}

	return &entity.Message{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Body:           data.Body,
		Mentions:       mentions,
		Attachments:    attachments,
		ReadBy:         readBy,
		Reactions:      reactions,
		CreatedAt:      data.CreatedAt,
	}, nil
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
// Read receipts and reactions are managed through their own operations.
func fromMessageDomain(data *entity.Message) (*model.MessageModel, error) {
	if data == nil {
		return nil, nil
	}

	var mentions []byte
	if len(data.Mentions) > 0 {
		encoded, err := json.Marshal(data.Mentions)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode message mentions")
		}
		mentions = encoded
	}

	attachments := make([]model.AttachmentModel, 0, len(data.Attachments))
	for _, attachment := range data.Attachments {
		attachments = append(attachments, model.AttachmentModel{
			ID:          attachment.ID,
			MessageID:   attachment.MessageID,
			FileName:    attachment.FileName,
			ContentType: attachment.ContentType,
			SizeBytes:   attachment.SizeBytes,
			StorageKey:  attachment.StorageKey,
		})
	}

	return &model.MessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Body:           data.Body,
		Mentions:       mentions,
		Attachments:    attachments,
	}, nil
}

// toAttachmentDomain converts a GORM AttachmentModel to a domain Attachment entity.
func toAttachmentDomain(data model.AttachmentModel) *entity.Attachment {
	return &entity.Attachment{
		ID:          data.ID,
		MessageID:   data.MessageID,
		FileName:    data.FileName,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		StorageKey:  data.StorageKey,
		CreatedAt:   data.CreatedAt,
	}
}
