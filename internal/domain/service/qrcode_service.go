package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateInviteQR generates a QR code that encodes a conversation invite.
	GenerateInviteQR(conversationID uuid.UUID) ([]byte, error)

	// ParseInviteQR parses QR code data and returns the conversation ID.
	ParseInviteQR(qrData string) (uuid.UUID, error)
}
