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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// conversationServiceFixtures holds all test dependencies for conversation service tests.
type conversationServiceFixtures struct {
	service          usecase.ConversationUsecase
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	conversationRepo *mockRepo.MockConversationRepository
	userRepo         *mockRepo.MockUserRepository
	qrcodeService    *mockService.MockQRCodeService
	fanout           *mockUsecase.MockFanoutUsecase
	live             *mockService.MockLivePublisher
}

func createTestConversationService(t *testing.T) conversationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	conversationRepo := mockRepo.NewMockConversationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	fanout := mockUsecase.NewMockFanoutUsecase(t)
	live := mockService.NewMockLivePublisher(t)

	service := NewConversationService(ConversationServiceParams{
		TxManager:        txManager,
		ConversationRepo: conversationRepo,
		UserRepo:         userRepo,
		QRCodeService:    qrcodeService,
		Fanout:           fanout,
		Live:             live,
		Logger:           newDiscardLogger(),
	})

	return conversationServiceFixtures{
		service:          service,
		txManager:        txManager,
		repoFactory:      repoFactory,
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		qrcodeService:    qrcodeService,
		fanout:           fanout,
		live:             live,
	}
}

// expectTransaction wires the transaction manager to run the callback against
// the fixture's repository factory.
func (fx conversationServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
}

func TestConversationService_CreateGroup_RequiresName(t *testing.T) {
	fx := createTestConversationService(t)

	conversation, err := fx.service.CreateGroup(context.Background(), uuid.New(), "", nil)
	assert.Nil(t, conversation)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestConversationService_CreateGroup_CreatorBecomesAdmin(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	memberID := uuid.New()

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, mock.Anything).
		Return([]*entity.User{{ID: creatorID}, {ID: memberID}}, nil)
	fx.conversationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Conversation")).
		Return(nil)
	fx.fanout.EXPECT().
		NotifyMemberAdded(ctx, mock.Anything, creatorID, memberID).
		Return(nil, nil)
	fx.live.EXPECT().SubscribeUser(mock.Anything, creatorID).Return()
	fx.live.EXPECT().SubscribeUser(mock.Anything, memberID).Return()

	// Duplicate and creator entries in the member list are ignored.
	conversation, err := fx.service.CreateGroup(ctx, creatorID, "Coaches", []uuid.UUID{memberID, memberID, creatorID})
	require.NoError(t, err)
	require.NotNil(t, conversation)
	assert.Equal(t, entity.ConversationTypeGroup, conversation.Type)
	require.Len(t, conversation.Members, 2)
	assert.True(t, conversation.IsAdmin(creatorID))
	assert.False(t, conversation.IsAdmin(memberID))
}

func TestConversationService_CreateGroup_UnknownMemberRejected(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	memberID := uuid.New()

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, mock.Anything).
		Return([]*entity.User{{ID: creatorID}}, nil)

	conversation, err := fx.service.CreateGroup(ctx, creatorID, "Coaches", []uuid.UUID{memberID})
	assert.Nil(t, conversation)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestConversationService_GetOrCreateDirect_SelfRejected(t *testing.T) {
	fx := createTestConversationService(t)

	userID := uuid.New()
	conversation, err := fx.service.GetOrCreateDirect(context.Background(), userID, userID)
	assert.Nil(t, conversation)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestConversationService_GetOrCreateDirect_ReturnsExisting(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	existing := &entity.Conversation{ID: uuid.New(), Type: entity.ConversationTypeDirect}

	fx.conversationRepo.EXPECT().
		FindDirectBetween(ctx, userID, otherID).
		Return(existing, nil)

	conversation, err := fx.service.GetOrCreateDirect(ctx, userID, otherID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, conversation.ID)
}

func TestConversationService_GetOrCreateDirect_CreatesPair(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindDirectBetween(ctx, userID, otherID).
		Return(nil, repository.ErrConversationNotFound)
	fx.userRepo.EXPECT().
		FindByID(ctx, otherID).
		Return(&entity.User{ID: otherID}, nil)
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Conversation")).
		Return(nil)
	fx.live.EXPECT().SubscribeUser(mock.Anything, userID).Return()
	fx.live.EXPECT().SubscribeUser(mock.Anything, otherID).Return()

	conversation, err := fx.service.GetOrCreateDirect(ctx, userID, otherID)
	require.NoError(t, err)
	require.NotNil(t, conversation)
	assert.Equal(t, entity.ConversationTypeDirect, conversation.Type)
	require.Len(t, conversation.Members, 2)
	assert.True(t, conversation.IsMember(userID))
	assert.True(t, conversation.IsMember(otherID))
}

func TestConversationService_GetOrCreateDirect_ConcurrentCreateRetries(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	winner := &entity.Conversation{ID: uuid.New(), Type: entity.ConversationTypeDirect}

	fx.conversationRepo.EXPECT().
		FindDirectBetween(ctx, userID, otherID).
		Return(nil, repository.ErrConversationNotFound).
		Once()
	fx.userRepo.EXPECT().
		FindByID(ctx, otherID).
		Return(&entity.User{ID: otherID}, nil)
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Conversation")).
		Return(errors.New("duplicate key value violates unique constraint"))
	fx.conversationRepo.EXPECT().
		FindDirectBetween(ctx, userID, otherID).
		Return(winner, nil).
		Once()

	conversation, err := fx.service.GetOrCreateDirect(ctx, userID, otherID)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, conversation.ID)
}

func TestConversationService_AddMember_NonAdminRejected(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	actorID := uuid.New()
	memberID := uuid.New()
	conversation := testGroupConversation(uuid.New(), actorID)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)

	err := fx.service.AddMember(ctx, actorID, conversation.ID, memberID)
	assert.ErrorIs(t, err, domainerrors.ErrNotAdmin)
}

func TestConversationService_AddMember_DirectConversationRejected(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	actorID := uuid.New()
	conversation := &entity.Conversation{
		ID:   uuid.New(),
		Type: entity.ConversationTypeDirect,
		Members: []entity.ConversationMember{
			{UserID: actorID, Role: entity.MemberRoleMember},
			{UserID: uuid.New(), Role: entity.MemberRoleMember},
		},
	}

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)

	err := fx.service.AddMember(ctx, actorID, conversation.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrDirectConversationImmutable)
}

func TestConversationService_AddMember_AlreadyMemberRejected(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	actorID := uuid.New()
	memberID := uuid.New()
	conversation := testGroupConversation(actorID, memberID)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)

	err := fx.service.AddMember(ctx, actorID, conversation.ID, memberID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyMember)
}

func TestConversationService_AddMember_NotifiesNewMember(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	actorID := uuid.New()
	memberID := uuid.New()
	conversation := testGroupConversation(actorID)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, memberID).
		Return(&entity.User{ID: memberID}, nil)
	fx.conversationRepo.EXPECT().
		AddMember(ctx, mock.MatchedBy(func(m *entity.ConversationMember) bool {
			return m.UserID == memberID && m.Role == entity.MemberRoleMember
		})).
		Return(nil)
	fx.fanout.EXPECT().
		NotifyMemberAdded(ctx, mock.Anything, actorID, memberID).
		Return(nil, nil)
	// Already connected sessions of the new member start receiving room events.
	fx.live.EXPECT().SubscribeUser(conversation.ID, memberID).Return()

	err := fx.service.AddMember(ctx, actorID, conversation.ID, memberID)
	require.NoError(t, err)
}

func TestConversationService_RemoveMember_LastAdminProtected(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	conversation := testGroupConversation(adminID, uuid.New())

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)

	err := fx.service.RemoveMember(ctx, adminID, conversation.ID, adminID)
	assert.ErrorIs(t, err, domainerrors.ErrLastAdmin)
}

func TestConversationService_RemoveMember_SelfLeaveSkipsNotification(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	memberID := uuid.New()
	conversation := testGroupConversation(adminID, memberID)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.conversationRepo.EXPECT().
		RemoveMember(ctx, conversation.ID, memberID).
		Return(nil)
	fx.live.EXPECT().UnsubscribeUser(conversation.ID, memberID).Return()

	// No fan-out expectation: leaving on your own initiative is silent.
	err := fx.service.RemoveMember(ctx, memberID, conversation.ID, memberID)
	require.NoError(t, err)
}

func TestConversationService_RemoveMember_AdminRemovalNotifies(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	memberID := uuid.New()
	conversation := testGroupConversation(adminID, memberID)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.conversationRepo.EXPECT().
		RemoveMember(ctx, conversation.ID, memberID).
		Return(nil)
	fx.fanout.EXPECT().
		NotifyMemberRemoved(ctx, mock.Anything, adminID, memberID).
		Return(nil, nil)
	// The removed member's live sessions stop receiving room events.
	fx.live.EXPECT().UnsubscribeUser(conversation.ID, memberID).Return()

	err := fx.service.RemoveMember(ctx, adminID, conversation.ID, memberID)
	require.NoError(t, err)
}

func TestConversationService_Archive_AdminOnly(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	memberID := uuid.New()
	conversation := testGroupConversation(uuid.New(), memberID)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)

	err := fx.service.Archive(ctx, memberID, conversation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotAdmin)
}

func TestConversationService_Archive_NotifiesMembers(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	conversation := testGroupConversation(adminID, uuid.New())

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.conversationRepo.EXPECT().
		Archive(ctx, conversation.ID).
		Return(nil)
	fx.fanout.EXPECT().
		NotifyConversationArchived(ctx, mock.MatchedBy(func(c *entity.Conversation) bool {
			return c.IsArchived()
		}), adminID).
		Return(nil, nil)

	err := fx.service.Archive(ctx, adminID, conversation.ID)
	require.NoError(t, err)
}

func TestConversationService_Archive_AlreadyArchived(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	conversation := testGroupConversation(adminID)
	now := time.Now()
	conversation.ArchivedAt = &now

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)

	err := fx.service.Archive(ctx, adminID, conversation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrConversationArchived)
}

func TestConversationService_GenerateInviteQR_AdminOnly(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	memberID := uuid.New()
	conversation := testGroupConversation(uuid.New(), memberID)

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)

	png, err := fx.service.GenerateInviteQR(ctx, memberID, conversation.ID)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrNotAdmin)
}

func TestConversationService_GenerateInviteQR_ReturnsPNG(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	conversation := testGroupConversation(adminID)

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.qrcodeService.EXPECT().
		GenerateInviteQR(conversation.ID).
		Return([]byte("png"), nil)

	png, err := fx.service.GenerateInviteQR(ctx, adminID, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestConversationService_JoinByInvite_InvalidCode(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()

	fx.qrcodeService.EXPECT().
		ParseInviteQR("garbage").
		Return(uuid.Nil, errors.New("invalid QR code type"))

	conversation, err := fx.service.JoinByInvite(ctx, uuid.New(), "garbage")
	assert.Nil(t, conversation)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestConversationService_JoinByInvite_AddsCaller(t *testing.T) {
	fx := createTestConversationService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversation := testGroupConversation(uuid.New())

	fx.qrcodeService.EXPECT().
		ParseInviteQR("invite-payload").
		Return(conversation.ID, nil)
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewConversationRepository().Return(fx.conversationRepo)
	fx.conversationRepo.EXPECT().
		LockByID(ctx, conversation.ID).
		Return(conversation, nil)
	fx.conversationRepo.EXPECT().
		AddMember(ctx, mock.MatchedBy(func(m *entity.ConversationMember) bool {
			return m.UserID == userID
		})).
		Return(nil)
	fx.live.EXPECT().SubscribeUser(conversation.ID, userID).Return()

	joined, err := fx.service.JoinByInvite(ctx, userID, "invite-payload")
	require.NoError(t, err)
	require.NotNil(t, joined)
	assert.True(t, joined.IsMember(userID))
}
