// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Phone        string    `gorm:"type:varchar(30)"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	// Per-channel notification opt-in flags.
	PrefEmail bool `gorm:"not null;default:true"`
	PrefPush  bool `gorm:"not null;default:true"`
	PrefInApp bool `gorm:"not null;default:true"`
	PrefSMS   bool `gorm:"not null;default:false"`

	Online       bool `gorm:"not null;default:false"`
	LastActiveAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Subscriptions []PushSubscriptionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PushSubscriptionModel mirrors the 'push_subscriptions' table. One row per
// registered device endpoint; the (user_id, token) pair is unique.
type PushSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_push_subscriptions_user_token"`
	Token     string    `gorm:"type:varchar(512);not null;uniqueIndex:idx_push_subscriptions_user_token"`
	Platform  string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
