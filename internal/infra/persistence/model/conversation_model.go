package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel mirrors the 'conversations' table.
// DirectKey holds the sorted "userA:userB" pair for direct conversations; the
// partial unique index guarantees at most one direct conversation per pair.
type ConversationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type       string    `gorm:"type:varchar(10);not null"`
	Name       string    `gorm:"type:varchar(100)"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null"`
	DirectKey  *string   `gorm:"type:varchar(80);uniqueIndex"`
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Members []ConversationMemberModel `gorm:"foreignKey:ConversationID"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// ConversationMemberModel mirrors the 'conversation_members' table.
type ConversationMemberModel struct {
	ConversationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Role           string    `gorm:"type:varchar(10);not null;default:'member'"`
	Muted          bool      `gorm:"not null;default:false"`
	MentionOnly    bool      `gorm:"not null;default:false"`
	JoinedAt       time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationMemberModel) TableName() string {
	return "conversation_members"
}
