package service

import (
	"context"
)

// PushSink defines the interface for push notification delivery.
type PushSink interface {
	// SendBatch sends push notifications to multiple device tokens.
	// Returns success count, failure count, list of invalid tokens, and error.
	// Invalid tokens belong to expired or unregistered endpoints and should be
	// pruned from the owning user's subscriptions.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// Send sends a push notification to a single device token.
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}
