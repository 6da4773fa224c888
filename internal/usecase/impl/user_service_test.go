package impl

import (
	"context"
	"testing"

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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	fanout       *mockUsecase.MockFanoutUsecase
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	fanout := mockUsecase.NewMockFanoutUsecase(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Fanout:       fanout,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		repoFactory:  repoFactory,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		fanout:       fanout,
	}
}

func (fx userServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
}

func registerInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:     "parent@example.com",
		Password:  "correct horse battery staple",
		Username:  "parent01",
		FirstName: "Pat",
		LastName:  "Taylor",
		Role:      entity.RoleParent,
		Phone:     "+15551234567",
	}
}

func TestUserService_Register_StartsPending(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("hashed-password", nil)
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
		Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.UserStatusPending, user.Status)
	assert.Equal(t, entity.DefaultNotificationPreferences(), user.Preferences)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, entity.RoleParent, user.Role)
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	input := registerInput()
	input.Role = entity.Role("mascot")

	user, err := fx.service.Register(context.Background(), input)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("hashed-password", nil)
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	user, err := fx.service.Register(ctx, input)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	result, err := fx.service.Login(ctx, "nobody@example.com", "whatever")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "coach@example.com", Status: entity.UserStatusApproved}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)
	fx.userRepo.EXPECT().
		FindPasswordHash(ctx, user.ID).
		Return("stored-hash", nil)
	fx.hasher.EXPECT().
		Check("wrong", "stored-hash").
		Return(false)

	result, err := fx.service.Login(ctx, user.Email, "wrong")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_PendingAccountRejected(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "player@example.com", Status: entity.UserStatusPending}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)
	fx.userRepo.EXPECT().
		FindPasswordHash(ctx, user.ID).
		Return("stored-hash", nil)
	fx.hasher.EXPECT().
		Check("secret", "stored-hash").
		Return(true)

	result, err := fx.service.Login(ctx, user.Email, "secret")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotApproved)
}

func TestUserService_Login_IssuesTokenPair(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "coach@example.com", Role: entity.RoleCoach, Status: entity.UserStatusApproved}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)
	fx.userRepo.EXPECT().
		FindPasswordHash(ctx, user.ID).
		Return("stored-hash", nil)
	fx.hasher.EXPECT().
		Check("secret", "stored-hash").
		Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"coach"}).
		Return("access-token", "refresh-token", nil)

	result, err := fx.service.Login(ctx, user.Email, "secret")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
}

func TestUserService_SetApproval_RequiresProgramAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleCoach}

	fx.userRepo.EXPECT().
		FindByID(ctx, actor.ID).
		Return(actor, nil)

	user, err := fx.service.SetApproval(ctx, actor.ID, uuid.New(), true)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_SetApproval_ApprovesAndNotifies(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	target := &entity.User{ID: uuid.New(), Role: entity.RolePlayer, Status: entity.UserStatusPending}

	fx.userRepo.EXPECT().
		FindByID(ctx, actor.ID).
		Return(actor, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, target.ID).
		Return(target, nil)
	fx.userRepo.EXPECT().
		UpdateStatus(ctx, target.ID, entity.UserStatusApproved).
		Return(nil)
	fx.fanout.EXPECT().
		NotifyApprovalStatus(ctx, mock.Anything, true).
		Return(nil, nil)

	user, err := fx.service.SetApproval(ctx, actor.ID, target.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusApproved, user.Status)
}

func TestUserService_SetApproval_DeclineSurvivesFanoutFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	target := &entity.User{ID: uuid.New(), Role: entity.RolePlayer, Status: entity.UserStatusPending}

	fx.userRepo.EXPECT().
		FindByID(ctx, actor.ID).
		Return(actor, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, target.ID).
		Return(target, nil)
	fx.userRepo.EXPECT().
		UpdateStatus(ctx, target.ID, entity.UserStatusDeclined).
		Return(nil)
	fx.fanout.EXPECT().
		NotifyApprovalStatus(ctx, mock.Anything, false).
		Return(nil, errors.New("all channels down"))

	user, err := fx.service.SetApproval(ctx, actor.ID, target.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusDeclined, user.Status)
}

func TestUserService_RegisterPushSubscription(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		AddPushSubscription(ctx, mock.MatchedBy(func(sub *entity.PushSubscription) bool {
			return sub.UserID == userID && sub.Token == "device-token" && sub.Platform == "android"
		})).
		Return(nil)

	sub, err := fx.service.RegisterPushSubscription(ctx, userID, "device-token", "android")
	require.NoError(t, err)
	assert.Equal(t, "device-token", sub.Token)
}

func TestUserService_RegisterPushSubscription_Duplicate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		AddPushSubscription(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Return(repository.ErrPushSubscriptionExists)

	sub, err := fx.service.RegisterPushSubscription(ctx, userID, "device-token", "ios")
	assert.Nil(t, sub)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestUserService_UnregisterPushSubscription(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		RemovePushSubscriptions(ctx, userID, []string{"device-token"}).
		Return(nil)

	err := fx.service.UnregisterPushSubscription(ctx, userID, "device-token")
	require.NoError(t, err)
}

func TestUserService_SetPresence(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		SetPresence(ctx, userID, true, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := fx.service.SetPresence(ctx, userID, true)
	require.NoError(t, err)
}

func TestUserService_ListUsers_FilterByStatus(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	pending := entity.UserStatusPending
	expected := []*entity.User{{ID: uuid.New(), Status: pending}}

	fx.userRepo.EXPECT().
		List(ctx, &pending).
		Return(expected, nil)

	users, err := fx.service.ListUsers(ctx, &pending)
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdatePreferences(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	prefs := entity.NotificationPreferences{Email: false, Push: true, InApp: true, SMS: true}

	fx.userRepo.EXPECT().
		UpdatePreferences(ctx, userID, prefs).
		Return(nil)

	err := fx.service.UpdatePreferences(ctx, userID, prefs)
	require.NoError(t, err)
}

func TestUserService_SetApproval_TargetNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	targetID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, actor.ID).
		Return(actor, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.SetApproval(ctx, actor.ID, targetID, true)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
