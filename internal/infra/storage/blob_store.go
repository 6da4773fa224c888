// Package storage provides attachment blob storage backed by gocloud.dev buckets.
package storage

import (
	"context"
	"log/slog"

	"portal/config"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Register the bucket drivers resolved from the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStore implements the FileStore interface on top of a gocloud.dev bucket.
type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by the configured URL and wires its closure into
// the application lifecycle. The URL scheme selects the driver
// (file://, gs://, mem://).
func New(params Params) (service.FileStore, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachment bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Attachment store initialized",
		slog.String("bucket_url", params.Config.Storage.BucketURL),
	)

	return &blobStore{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// Save writes the given bytes under the key with the provided content type.
func (s *blobStore) Save(ctx context.Context, key string, contentType string, data []byte) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrap(err, "failed to write attachment blob")
	}

	return nil
}

// Load reads the bytes stored under the key.
func (s *blobStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read attachment blob")
	}

	return data, nil
}

// Delete removes the object stored under the key. Missing keys are not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete attachment blob")
	}

	return nil
}
