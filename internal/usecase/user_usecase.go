// Package usecase defines the application-facing interfaces of the portal.
// Each usecase groups the operations of one functional area; implementations
// live in the impl subpackage.
package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields required to register a new account.
type RegisterInput struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
	Role      entity.Role
	Phone     string
}

// LoginResult carries the outcome of a successful login.
type LoginResult struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for the member directory use cases:
// registration, approval, profile, notification preferences, presence and
// push subscription management.
type UserUsecase interface {
	// Register creates a new account in pending status with default
	// notification preferences.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair. Accounts that are
	// not approved cannot log in.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// GetProfile retrieves a user's profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ListUsers retrieves the member roster, optionally filtered by status.
	ListUsers(ctx context.Context, status *entity.UserStatus) ([]*entity.User, error)

	// SetApproval approves or declines a pending registration. Only program
	// admins may call this; the decision is fanned out to the affected user.
	SetApproval(ctx context.Context, actorID, userID uuid.UUID, approved bool) (*entity.User, error)

	// UpdatePreferences replaces the caller's notification preferences.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs entity.NotificationPreferences) error

	// RegisterPushSubscription registers a device endpoint for push delivery.
	RegisterPushSubscription(ctx context.Context, userID uuid.UUID, token, platform string) (*entity.PushSubscription, error)

	// UnregisterPushSubscription removes a previously registered device endpoint.
	UnregisterPushSubscription(ctx context.Context, userID uuid.UUID, token string) error

	// SetPresence records whether the user currently holds a live session.
	SetPresence(ctx context.Context, userID uuid.UUID, online bool) error
}
