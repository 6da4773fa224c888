package service

import "context"

// FileStore defines the interface for attachment blob storage.
type FileStore interface {
	// Save writes the given bytes under the key with the provided content type.
	Save(ctx context.Context, key string, contentType string, data []byte) error

	// Load reads the bytes stored under the key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes the object stored under the key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
