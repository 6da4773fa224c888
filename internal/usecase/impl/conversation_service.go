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

// conversationService implements the ConversationUsecase interface.
type conversationService struct {
	txManager        repository.TransactionManager
	conversationRepo repository.ConversationRepository
	userRepo         repository.UserRepository
	qrcodeService    service.QRCodeService
	fanout           usecase.FanoutUsecase
	live             service.LivePublisher
	logger           *slog.Logger
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ConversationRepo repository.ConversationRepository
	UserRepo         repository.UserRepository
	QRCodeService    service.QRCodeService
	Fanout           usecase.FanoutUsecase
	Live             service.LivePublisher
	Logger           *slog.Logger
}

// NewConversationService is the constructor for conversationService.
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	return &conversationService{
		txManager:        params.TxManager,
		conversationRepo: params.ConversationRepo,
		userRepo:         params.UserRepo,
		qrcodeService:    params.QRCodeService,
		fanout:           params.Fanout,
		live:             params.Live,
		logger:           params.Logger,
	}
}

func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGroup creates a named group conversation with the creator as its sole
// initial admin.
func (srv *conversationService) CreateGroup(ctx context.Context, creatorID uuid.UUID, name string, memberIDs []uuid.UUID) (*entity.Conversation, error) {
	srv.log(ctx).Info("Creating group conversation", slog.Any("creatorID", creatorID), slog.String("name", name))

	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("group conversation requires a name")
	}

	now := time.Now()
	conversation := &entity.Conversation{
		ID:        uuid.New(),
		Type:      entity.ConversationTypeGroup,
		Name:      name,
		CreatedBy: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
		Members: []entity.ConversationMember{
			{UserID: creatorID, Role: entity.MemberRoleAdmin, JoinedAt: now},
		},
	}

	for _, memberID := range memberIDs {
		if memberID == creatorID || conversation.IsMember(memberID) {
			continue
		}
		conversation.Members = append(conversation.Members, entity.ConversationMember{
			UserID:   memberID,
			Role:     entity.MemberRoleMember,
			JoinedAt: now,
		})
	}
	for i := range conversation.Members {
		conversation.Members[i].ConversationID = conversation.ID
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Every listed member must be a known user.
		users, findErr := repoFactory.NewUserRepository().FindByIDs(ctx, conversation.MemberIDs())
		if findErr != nil {
			return errors.Wrap(findErr, "failed to resolve initial members")
		}
		if len(users) != len(conversation.Members) {
			return domainerrors.ErrUserNotFound.WrapMessage("unknown user in initial member list")
		}

		return repoFactory.NewConversationRepository().Create(ctx, conversation)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create group conversation", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute group creation transaction")
	}

	// Initial members learn about the group through an added_to_conversation
	// notification; their live sessions start receiving room events right away.
	for _, member := range conversation.Members {
		srv.live.SubscribeUser(conversation.ID, member.UserID)
		if member.UserID == creatorID {
			continue
		}
		if _, err := srv.fanout.NotifyMemberAdded(ctx, conversation, creatorID, member.UserID); err != nil {
			srv.log(ctx).Error("Failed to fan out member-added notification", slog.Any("memberID", member.UserID), slog.Any("error", err))
		}
	}

	return conversation, nil
}

// GetOrCreateDirect returns the direct conversation between two users,
// creating it when none exists.
func (srv *conversationService) GetOrCreateDirect(ctx context.Context, userID, otherID uuid.UUID) (*entity.Conversation, error) {
	if userID == otherID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cannot open a direct conversation with yourself")
	}

	existing, err := srv.conversationRepo.FindDirectBetween(ctx, userID, otherID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrConversationNotFound) {
		return nil, errors.Wrap(err, "failed to look up direct conversation")
	}

	if _, err := srv.userRepo.FindByID(ctx, otherID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "direct conversation counterpart not found")
		}

		return nil, errors.Wrap(err, "failed to resolve counterpart")
	}

	now := time.Now()
	conversation := &entity.Conversation{
		ID:        uuid.New(),
		Type:      entity.ConversationTypeDirect,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
		Members: []entity.ConversationMember{
			{UserID: userID, Role: entity.MemberRoleMember, JoinedAt: now},
			{UserID: otherID, Role: entity.MemberRoleMember, JoinedAt: now},
		},
	}
	for i := range conversation.Members {
		conversation.Members[i].ConversationID = conversation.ID
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewConversationRepository().Create(ctx, conversation)
	})
	if err != nil {
		// A concurrent request may have created the pair first; the unique
		// constraint on the pair makes the retry safe.
		if retry, retryErr := srv.conversationRepo.FindDirectBetween(ctx, userID, otherID); retryErr == nil {
			return retry, nil
		}

		return nil, errors.Wrap(err, "failed to create direct conversation")
	}

	srv.live.SubscribeUser(conversation.ID, userID)
	srv.live.SubscribeUser(conversation.ID, otherID)

	return conversation, nil
}

// Get retrieves a conversation the caller is a member of.
func (srv *conversationService) Get(ctx context.Context, userID, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.findConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.IsMember(userID) {
		return nil, errors.Wrap(domainerrors.ErrNotMember, "conversation access denied")
	}

	return conversation, nil
}

// ListForUser retrieves the caller's conversations.
func (srv *conversationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	conversations, err := srv.conversationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return conversations, nil
}

// AddMember adds a user to a group conversation. Admin only.
func (srv *conversationService) AddMember(ctx context.Context, actorID, conversationID, memberID uuid.UUID) error {
	srv.log(ctx).Info("Adding conversation member", slog.Any("conversationID", conversationID), slog.Any("memberID", memberID))

	var conversation *entity.Conversation
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		convRepo := repoFactory.NewConversationRepository()

		locked, lockErr := convRepo.LockByID(ctx, conversationID)
		if lockErr != nil {
			if errors.Is(lockErr, repository.ErrConversationNotFound) {
				return domainerrors.ErrConversationNotFound.WrapMessage("cannot add member")
			}

			return errors.Wrap(lockErr, "failed to lock conversation")
		}

		if locked.Type == entity.ConversationTypeDirect {
			return errors.Wrap(domainerrors.ErrDirectConversationImmutable, "cannot add member")
		}
		if locked.IsArchived() {
			return errors.Wrap(domainerrors.ErrConversationArchived, "cannot add member")
		}
		if !locked.IsAdmin(actorID) {
			return errors.Wrap(domainerrors.ErrNotAdmin, "cannot add member")
		}
		if locked.IsMember(memberID) {
			return errors.Wrap(domainerrors.ErrAlreadyMember, "cannot add member")
		}

		if _, findErr := repoFactory.NewUserRepository().FindByID(ctx, memberID); findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("cannot add unknown user")
			}

			return errors.Wrap(findErr, "failed to resolve new member")
		}

		member := &entity.ConversationMember{
			ConversationID: conversationID,
			UserID:         memberID,
			Role:           entity.MemberRoleMember,
			JoinedAt:       time.Now(),
		}
		if addErr := convRepo.AddMember(ctx, member); addErr != nil {
			if errors.Is(addErr, repository.ErrMemberExists) {
				return errors.Wrap(domainerrors.ErrAlreadyMember, "cannot add member")
			}

			return errors.Wrap(addErr, "failed to add member")
		}

		locked.Members = append(locked.Members, *member)
		conversation = locked

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute add-member transaction")
	}

	srv.live.SubscribeUser(conversationID, memberID)
	if _, err := srv.fanout.NotifyMemberAdded(ctx, conversation, actorID, memberID); err != nil {
		srv.log(ctx).Error("Failed to fan out member-added notification", slog.Any("memberID", memberID), slog.Any("error", err))
	}

	return nil
}

// RemoveMember removes a member from a group conversation. Admins can remove
// anyone except the last remaining admin; members can remove themselves.
func (srv *conversationService) RemoveMember(ctx context.Context, actorID, conversationID, memberID uuid.UUID) error {
	srv.log(ctx).Info("Removing conversation member", slog.Any("conversationID", conversationID), slog.Any("memberID", memberID))

	var conversation *entity.Conversation
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		convRepo := repoFactory.NewConversationRepository()

		locked, lockErr := convRepo.LockByID(ctx, conversationID)
		if lockErr != nil {
			if errors.Is(lockErr, repository.ErrConversationNotFound) {
				return domainerrors.ErrConversationNotFound.WrapMessage("cannot remove member")
			}

			return errors.Wrap(lockErr, "failed to lock conversation")
		}

		if locked.Type == entity.ConversationTypeDirect {
			return errors.Wrap(domainerrors.ErrDirectConversationImmutable, "cannot remove member")
		}
		if actorID != memberID && !locked.IsAdmin(actorID) {
			return errors.Wrap(domainerrors.ErrNotAdmin, "cannot remove member")
		}

		target := locked.Member(memberID)
		if target == nil {
			return errors.Wrap(domainerrors.ErrNotMember, "cannot remove member")
		}
		if target.Role == entity.MemberRoleAdmin && locked.AdminCount() == 1 {
			return errors.Wrap(domainerrors.ErrLastAdmin, "cannot remove member")
		}

		if removeErr := convRepo.RemoveMember(ctx, conversationID, memberID); removeErr != nil {
			return errors.Wrap(removeErr, "failed to remove member")
		}
		conversation = locked

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute remove-member transaction")
	}

	srv.live.UnsubscribeUser(conversationID, memberID)

	// A member leaving on their own initiative needs no notification.
	if actorID != memberID {
		if _, err := srv.fanout.NotifyMemberRemoved(ctx, conversation, actorID, memberID); err != nil {
			srv.log(ctx).Error("Failed to fan out member-removed notification", slog.Any("memberID", memberID), slog.Any("error", err))
		}
	}

	return nil
}

// UpdateMemberSettings updates the caller's own per-conversation settings.
func (srv *conversationService) UpdateMemberSettings(ctx context.Context, userID, conversationID uuid.UUID, muted, mentionOnly bool) error {
	conversation, err := srv.findConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conversation.IsMember(userID) {
		return errors.Wrap(domainerrors.ErrNotMember, "cannot update settings")
	}

	if err := srv.conversationRepo.UpdateMemberSettings(ctx, conversationID, userID, muted, mentionOnly); err != nil {
		return errors.Wrap(err, "failed to update member settings")
	}

	return nil
}

// Archive archives a group conversation, making it read-only.
func (srv *conversationService) Archive(ctx context.Context, actorID, conversationID uuid.UUID) error {
	srv.log(ctx).Info("Archiving conversation", slog.Any("conversationID", conversationID), slog.Any("actorID", actorID))

	var conversation *entity.Conversation
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		convRepo := repoFactory.NewConversationRepository()

		locked, lockErr := convRepo.LockByID(ctx, conversationID)
		if lockErr != nil {
			if errors.Is(lockErr, repository.ErrConversationNotFound) {
				return domainerrors.ErrConversationNotFound.WrapMessage("cannot archive")
			}

			return errors.Wrap(lockErr, "failed to lock conversation")
		}

		if !locked.IsAdmin(actorID) {
			return errors.Wrap(domainerrors.ErrNotAdmin, "cannot archive")
		}
		if locked.IsArchived() {
			return errors.Wrap(domainerrors.ErrConversationArchived, "already archived")
		}

		if archiveErr := convRepo.Archive(ctx, conversationID); archiveErr != nil {
			return errors.Wrap(archiveErr, "failed to archive conversation")
		}

		now := time.Now()
		locked.ArchivedAt = &now
		conversation = locked

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute archive transaction")
	}

	if _, err := srv.fanout.NotifyConversationArchived(ctx, conversation, actorID); err != nil {
		srv.log(ctx).Error("Failed to fan out archive notification", slog.Any("conversationID", conversationID), slog.Any("error", err))
	}

	return nil
}

// GenerateInviteQR renders a QR code that encodes a join invite. Admin only.
func (srv *conversationService) GenerateInviteQR(ctx context.Context, actorID, conversationID uuid.UUID) ([]byte, error) {
	conversation, err := srv.findConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation.Type == entity.ConversationTypeDirect {
		return nil, errors.Wrap(domainerrors.ErrDirectConversationImmutable, "cannot invite to a direct conversation")
	}
	if !conversation.IsAdmin(actorID) {
		return nil, errors.Wrap(domainerrors.ErrNotAdmin, "cannot generate invite")
	}

	png, err := srv.qrcodeService.GenerateInviteQR(conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR code")
	}

	return png, nil
}

// JoinByInvite adds the caller to the conversation encoded in the QR data.
func (srv *conversationService) JoinByInvite(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Conversation, error) {
	conversationID, err := srv.qrcodeService.ParseInviteQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid invite code")
	}

	var conversation *entity.Conversation
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		convRepo := repoFactory.NewConversationRepository()

		locked, lockErr := convRepo.LockByID(ctx, conversationID)
		if lockErr != nil {
			if errors.Is(lockErr, repository.ErrConversationNotFound) {
				return domainerrors.ErrConversationNotFound.WrapMessage("invite target missing")
			}

			return errors.Wrap(lockErr, "failed to lock conversation")
		}

		if locked.Type == entity.ConversationTypeDirect {
			return errors.Wrap(domainerrors.ErrDirectConversationImmutable, "cannot join a direct conversation")
		}
		if locked.IsArchived() {
			return errors.Wrap(domainerrors.ErrConversationArchived, "cannot join")
		}
		if locked.IsMember(userID) {
			return errors.Wrap(domainerrors.ErrAlreadyMember, "cannot join")
		}

		member := &entity.ConversationMember{
			ConversationID: conversationID,
			UserID:         userID,
			Role:           entity.MemberRoleMember,
			JoinedAt:       time.Now(),
		}
		if addErr := convRepo.AddMember(ctx, member); addErr != nil {
			if errors.Is(addErr, repository.ErrMemberExists) {
				return errors.Wrap(domainerrors.ErrAlreadyMember, "cannot join")
			}

			return errors.Wrap(addErr, "failed to join conversation")
		}

		locked.Members = append(locked.Members, *member)
		conversation = locked

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute join transaction")
	}

	srv.live.SubscribeUser(conversationID, userID)

	return conversation, nil
}

func (srv *conversationService) findConversation(ctx context.Context, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrConversationNotFound, "conversation lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	return conversation, nil
}
