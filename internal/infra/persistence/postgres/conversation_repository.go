package postgres

import (
	"context"
	"strings"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// Create persists a new conversation together with its initial members.
func (repo *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	conversationM := fromConversationDomain(conversation)

	if err := repo.db.WithContext(ctx).Create(conversationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("conversation already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid member reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	// Update the entity with generated values
	conversation.ID = conversationM.ID
	conversation.CreatedAt = conversationM.CreatedAt
	conversation.UpdatedAt = conversationM.UpdatedAt
	for i := range conversationM.Members {
		conversation.Members[i].ConversationID = conversationM.Members[i].ConversationID
		conversation.Members[i].JoinedAt = conversationM.Members[i].JoinedAt
	}

	return nil
}

// FindByID retrieves a conversation by its unique ID, including members.
func (repo *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Preload("Members").
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by id")
	}

	return toConversationDomain(&conversationM), nil
}

// FindByUser retrieves all conversations the given user belongs to,
// ordered by most recent activity.
func (repo *conversationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var conversationModels []*model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Preload("Members").
		Joins("JOIN conversation_members cm ON cm.conversation_id = conversations.id").
		Where("cm.user_id = ?", userID).
		Order("conversations.updated_at DESC").
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversations by user")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// FindDirectBetween retrieves the direct conversation between two users.
func (repo *conversationRepository) FindDirectBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Preload("Members").
		Where("type = ? AND direct_key = ?", string(entity.ConversationTypeDirect), DirectKey(userA, userB)).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find direct conversation")
	}

	return toConversationDomain(&conversationM), nil
}

// LockByID retrieves a conversation by ID with a row-level write lock.
// Only meaningful inside a transaction.
func (repo *conversationRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to lock conversation")
	}

	// Members are loaded after the lock is taken so the snapshot is consistent.
	var memberModels []model.ConversationMemberModel
	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", id).
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load conversation members")
	}
	conversationM.Members = memberModels

	return toConversationDomain(&conversationM), nil
}

// AddMember persists a new membership record.
func (repo *conversationRepository) AddMember(ctx context.Context, member *entity.ConversationMember) error {
	memberM := fromMemberDomain(*member)

	if err := repo.db.WithContext(ctx).Create(&memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrMemberExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add conversation member")
	}

	member.JoinedAt = memberM.JoinedAt

	return nil
}

// RemoveMember deletes a membership record.
func (repo *conversationRepository) RemoveMember(ctx context.Context, conversationID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Delete(&model.ConversationMemberModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove conversation member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// UpdateMemberSettings updates the mute and mention-only flags of a membership.
func (repo *conversationRepository) UpdateMemberSettings(ctx context.Context, conversationID, userID uuid.UUID, muted, mentionOnly bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationMemberModel{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Updates(map[string]any{
			"muted":        muted,
			"mention_only": mentionOnly,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update member settings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// Archive marks a conversation as archived.
func (repo *conversationRepository) Archive(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ? AND archived_at IS NULL", id).
		Update("archived_at", gorm.Expr("NOW()"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to archive conversation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// DirectKey builds the canonical pair key stored for direct conversations.
// The two IDs are sorted so the key is independent of argument order.
func DirectKey(userA, userB uuid.UUID) string {
	a, b := userA.String(), userB.String()
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}

	return a + ":" + b
}

// --- Mapper Functions ---

// toConversationDomain converts a GORM ConversationModel to a domain Conversation entity.
func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	members := make([]entity.ConversationMember, 0, len(data.Members))
	for _, memberM := range data.Members {
		members = append(members, toMemberDomain(memberM))
	}

	return &entity.Conversation{
		ID:         data.ID,
		Type:       entity.ConversationType(data.Type),
		Name:       data.Name,
		CreatedBy:  data.CreatedBy,
		Members:    members,
		ArchivedAt: data.ArchivedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromConversationDomain converts a domain Conversation entity to a GORM ConversationModel.
func fromConversationDomain(data *entity.Conversation) *model.ConversationModel {
	if data == nil {
		return nil
	}

	members := make([]model.ConversationMemberModel, 0, len(data.Members))
	for _, member := range data.Members {
		members = append(members, fromMemberDomain(member))
	}

	conversationM := &model.ConversationModel{
		ID:         data.ID,
		Type:       string(data.Type),
		Name:       data.Name,
		CreatedBy:  data.CreatedBy,
		ArchivedAt: data.ArchivedAt,
		Members:    members,
	}

	if data.Type == entity.ConversationTypeDirect && len(data.Members) == 2 {
		key := DirectKey(data.Members[0].UserID, data.Members[1].UserID)
		conversationM.DirectKey = &key
	}

	return conversationM
}

// toMemberDomain converts a GORM ConversationMemberModel to a domain ConversationMember.
func toMemberDomain(data model.ConversationMemberModel) entity.ConversationMember {
	return entity.ConversationMember{
		ConversationID: data.ConversationID,
		UserID:         data.UserID,
		Role:           entity.MemberRole(data.Role),
		Muted:          data.Muted,
		MentionOnly:    data.MentionOnly,
		JoinedAt:       data.JoinedAt,
	}
}

// fromMemberDomain converts a domain ConversationMember to a GORM ConversationMemberModel.
func fromMemberDomain(data entity.ConversationMember) model.ConversationMemberModel {
	return model.ConversationMemberModel{
		ConversationID: data.ConversationID,
		UserID:         data.UserID,
		Role:           string(data.Role),
		Muted:          data.Muted,
		MentionOnly:    data.MentionOnly,
		JoinedAt:       data.JoinedAt,
	}
}
