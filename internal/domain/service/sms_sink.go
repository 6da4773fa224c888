package service

import "context"

// SMSSink defines the interface for SMS notification delivery.
// Only important notifications are sent over SMS.
type SMSSink interface {
	// Send delivers a single text message to a phone number in E.164 format.
	Send(ctx context.Context, phone, text string) error
}
