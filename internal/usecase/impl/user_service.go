// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"portal/config"
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	fanout       usecase.FanoutUsecase
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Fanout       usecase.FanoutUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		fanout:       params.Fanout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. New accounts start
// in pending status and cannot log in until an admin approves them.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Any("role", input.Role))

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role: " + input.Role.String())
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	now := time.Now()
	newUser := &entity.User{
		ID:          uuid.New(),
		Email:       input.Email,
		Username:    input.Username,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Role:        input.Role,
		Phone:       input.Phone,
		Status:      entity.UserStatusPending,
		Preferences: entity.DefaultNotificationPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		if createErr := userRepo.Create(ctx, newUser, hashedPassword); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// Login verifies credentials and issues a token pair for an approved account.
func (srv *userService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	hash, err := srv.userRepo.FindPasswordHash(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load password hash")
	}

	// Check password before the status gate so declined accounts cannot be
	// distinguished from wrong passwords by unauthenticated callers.
	if !srv.hasher.Check(password, hash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if user.Status != entity.UserStatusApproved {
		srv.log(ctx).Warn("Login rejected for unapproved account", slog.Any("userID", user.ID), slog.Any("status", user.Status))

		return nil, errors.Wrap(domainerrors.ErrUserNotApproved, "login rejected")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetProfile retrieves a user's profile.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// ListUsers retrieves the member roster, optionally filtered by status.
func (srv *userService) ListUsers(ctx context.Context, status *entity.UserStatus) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// SetApproval approves or declines a pending registration and notifies the
// affected user. Only program admins may decide.
func (srv *userService) SetApproval(ctx context.Context, actorID, userID uuid.UUID, approved bool) (*entity.User, error) {
	srv.log(ctx).Info("Setting approval status", slog.Any("actorID", actorID), slog.Any("userID", userID), slog.Bool("approved", approved))

	actor, err := srv.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find approving actor")
	}
	if actor.Role != entity.RoleAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only program admins can approve registrations")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "approval target not found")
		}

		return nil, errors.Wrap(err, "failed to find approval target")
	}

	status := entity.UserStatusDeclined
	if approved {
		status = entity.UserStatusApproved
	}

	if err := srv.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update approval status")
	}
	user.Status = status

	// Notify the user of the decision. Delivery failures must not fail the decision.
	if _, err := srv.fanout.NotifyApprovalStatus(ctx, user, approved); err != nil {
		srv.log(ctx).Error("Failed to fan out approval notification", slog.Any("userID", userID), slog.Any("error", err))
	}

	return user, nil
}

// UpdatePreferences replaces the caller's notification preferences.
func (srv *userService) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs entity.NotificationPreferences) error {
	if err := srv.userRepo.UpdatePreferences(ctx, userID, prefs); err != nil {
		return errors.Wrap(err, "failed to update notification preferences")
	}

	return nil
}

// RegisterPushSubscription registers a device endpoint for push delivery.
func (srv *userService) RegisterPushSubscription(ctx context.Context, userID uuid.UUID, token, platform string) (*entity.PushSubscription, error) {
	sub := &entity.PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		Platform:  platform,
		CreatedAt: time.Now(),
	}

	if err := srv.userRepo.AddPushSubscription(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrPushSubscriptionExists) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "device token already registered")
		}

		return nil, errors.Wrap(err, "failed to register push subscription")
	}

	srv.log(ctx).Debug("Registered push subscription", slog.Any("userID", userID), slog.String("platform", platform))

	return sub, nil
}

// UnregisterPushSubscription removes a previously registered device endpoint.
func (srv *userService) UnregisterPushSubscription(ctx context.Context, userID uuid.UUID, token string) error {
	if err := srv.userRepo.RemovePushSubscriptions(ctx, userID, []string{token}); err != nil {
		return errors.Wrap(err, "failed to unregister push subscription")
	}

	return nil
}

// SetPresence records whether the user currently holds a live session.
func (srv *userService) SetPresence(ctx context.Context, userID uuid.UUID, online bool) error {
	if err := srv.userRepo.SetPresence(ctx, userID, online, time.Now()); err != nil {
		return errors.Wrap(err, "failed to record presence")
	}

	return nil
}
