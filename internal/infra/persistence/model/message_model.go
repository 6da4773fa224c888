package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table. Mentions are stored as a JSONB
// array of user IDs; the repository layer handles the encoding.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_conversation_created"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null"`
	Body           string    `gorm:"type:text"`
	Mentions       []byte    `gorm:"type:jsonb"`
	CreatedAt      time.Time `gorm:"index:idx_messages_conversation_created"`

	Attachments  []AttachmentModel  `gorm:"foreignKey:MessageID"`
	ReadReceipts []ReadReceiptModel `gorm:"foreignKey:MessageID"`
	Reactions    []ReactionModel    `gorm:"foreignKey:MessageID"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

// AttachmentModel mirrors the 'attachments' table. The attachment bytes live
// in the blob store under StorageKey; only the descriptor is persisted here.
type AttachmentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MessageID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	SizeBytes   int64     `gorm:"not null"`
	StorageKey  string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttachmentModel) TableName() string {
	return "attachments"
}

// ReadReceiptModel mirrors the 'read_receipts' table. The composite primary
// key makes duplicate reads a no-op at the database level.
type ReadReceiptModel struct {
	MessageID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReadAt    time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ReadReceiptModel) TableName() string {
	return "read_receipts"
}

// ReactionModel mirrors the 'reactions' table.
type ReactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MessageID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reactions_message_user_emoji"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_message_user_emoji"`
	Emoji     string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_reactions_message_user_emoji"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReactionModel) TableName() string {
	return "reactions"
}
