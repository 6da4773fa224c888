package service

import "context"

// EmailSink defines the interface for email notification delivery.
type EmailSink interface {
	// Send delivers a single email. The html body is optional; when empty a
	// plain-text message is sent.
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}
