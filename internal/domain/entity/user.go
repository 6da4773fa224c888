// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the approval state of a registered account.
type UserStatus string

const (
	// UserStatusPending indicates a freshly registered account awaiting admin approval.
	UserStatusPending UserStatus = "pending"
	// UserStatusApproved indicates an account cleared to use the portal.
	UserStatusApproved UserStatus = "approved"
	// UserStatusDeclined indicates an account whose registration was rejected.
	UserStatusDeclined UserStatus = "declined"
)

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusDeclined:
		return true
	default:
		return false
	}
}

// NotificationPreferences holds the per-channel opt-in flags of a user.
type NotificationPreferences struct {
	Email bool `json:"email"` // Receive notifications by email.
	Push  bool `json:"push"`  // Receive push notifications on registered devices.
	InApp bool `json:"in_app"` // Surface notifications in the in-app feed.
	SMS   bool `json:"sms"`   // Receive SMS for important notifications only.
}

// DefaultNotificationPreferences mirrors the defaults applied at registration.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{Email: true, Push: true, InApp: true, SMS: false}
}

// PushSubscription represents a single device endpoint registered for push delivery.
// A user may hold zero or more subscriptions, one per device.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`         // The unique ID for this subscription record.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this subscription.
	Token     string    `json:"token"`      // Delivery-sink endpoint token for this device.
	Platform  string    `json:"platform"`   // Device platform (ios, android, web).
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this subscription was registered.
}

// User is the core entity in the system, representing a single member of the
// basketball program. It carries the identity, notification preferences and
// presence state consumed by the messaging and fan-out components.
type User struct {
	ID            uuid.UUID               `json:"id"`
	Email         string                  `json:"email"`
	Username      string                  `json:"username"`
	FirstName     string                  `json:"first_name"`
	LastName      string                  `json:"last_name"`
	Role          Role                    `json:"role"`
	Phone         string                  `json:"phone,omitempty"`
	Status        UserStatus              `json:"status"`
	Preferences   NotificationPreferences `json:"notification_preferences"`
	Subscriptions []PushSubscription      `json:"push_subscriptions,omitempty"`
	Online        bool                    `json:"online"`
	LastActiveAt  *time.Time              `json:"last_active_at,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// DisplayName returns the human-facing name used in notification copy.
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// PushTokens collects the subscription tokens currently registered for the user.
func (u *User) PushTokens() []string {
	if len(u.Subscriptions) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(u.Subscriptions))
	for _, sub := range u.Subscriptions {
		tokens = append(tokens, sub.Token)
	}

	return tokens
}
