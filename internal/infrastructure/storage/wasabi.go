package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"dadadu-backend/internal/config"
)

// WasabiStorage mints pre-signed upload URLs against the Wasabi
// S3-compatible API. The backend never proxies file bytes itself;
// clients PUT directly to object storage.
type WasabiStorage struct {
	client *minio.Client
	bucket string
}

// NewWasabiStorage creates the S3 client for the configured region.
// Credentials must already be validated (config.StorageConfig.Validate).
func NewWasabiStorage(cfg config.StorageConfig) (*WasabiStorage, error) {
	client, err := minio.New(cfg.Endpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: true,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create wasabi client: %w", err)
	}

	return &WasabiStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// PresignUpload returns a time-limited PUT URL for the given object
// key. The signature covers the Content-Type and grants public-read
// on the uploaded object, so the client must send both headers
// unchanged.
func (s *WasabiStorage) PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)
	headers.Set("x-amz-acl", "public-read")

	signedURL, err := s.client.PresignHeader(
		ctx,
		http.MethodPut,
		s.bucket,
		key,
		expiry,
		url.Values{},
		headers,
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload url: %w", err)
	}

	return signedURL.String(), nil
}
