// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrPushSubscriptionExists is returned when a device token is already registered.
	ErrPushSubscriptionExists = errors.New("push subscription already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity together with its credential hash.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// FindByID retrieves a single user by their unique ID, including push subscriptions.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDs retrieves users for the given IDs in one round trip.
	// Missing IDs are silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves all users, optionally filtered by approval status.
	// A nil status returns every user.
	List(ctx context.Context, status *entity.UserStatus) ([]*entity.User, error)

	// FindPasswordHash retrieves the credential hash for login verification.
	FindPasswordHash(ctx context.Context, userID uuid.UUID) (string, error)

	// UpdatePreferences replaces the notification preferences of a user.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs entity.NotificationPreferences) error

	// UpdateStatus sets the approval status of a user.
	UpdateStatus(ctx context.Context, userID uuid.UUID, status entity.UserStatus) error

	// SetPresence records the online flag and last-active timestamp of a user.
	SetPresence(ctx context.Context, userID uuid.UUID, online bool, lastActiveAt time.Time) error

	// AddPushSubscription registers a device endpoint for push delivery.
	AddPushSubscription(ctx context.Context, sub *entity.PushSubscription) error

	// RemovePushSubscriptions deletes the subscriptions holding the given tokens.
	// Used both for explicit unsubscription and for pruning expired endpoints.
	RemovePushSubscriptions(ctx context.Context, userID uuid.UUID, tokens []string) error
}
