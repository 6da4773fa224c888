package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. Data carries the
// structured JSONB payload rendered into client deep links.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient_created"`
	Type        string    `gorm:"type:varchar(40);not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Body        string    `gorm:"type:text"`
	Data        []byte    `gorm:"type:jsonb"`
	Read        bool      `gorm:"not null;default:false;index"`
	ReadAt      *time.Time
	CreatedAt   time.Time `gorm:"index:idx_notifications_recipient_created"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
