package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dadadu-backend/internal/domains/upload/model"
)

// UploadURLExpiry is how long a signed PUT URL stays valid.
const UploadURLExpiry = 5 * time.Minute

// Presigner mints time-limited upload URLs against object storage.
type Presigner interface {
	PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
}

// ServiceInterface is the upload domain's business logic surface.
type ServiceInterface interface {
	SignUpload(ctx context.Context, userID uuid.UUID, req model.SignUploadRequest) (*model.SignUploadResponse, error)
}

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type uploadService struct {
	presigner Presigner
}

func NewUploadService(presigner Presigner) ServiceInterface {
	return &uploadService{
		presigner: presigner,
	}
}

// SignUpload builds the object key and signs a PUT for it. The key is
// namespaced by caller identity and stamped with the current time in
// milliseconds so uploads never collide or overwrite across users.
func (s *uploadService) SignUpload(
	ctx context.Context,
	userID uuid.UUID,
	req model.SignUploadRequest,
) (*model.SignUploadResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fileKey := BuildFileKey(userID, req.Filename, time.Now())

	signedURL, err := s.presigner.PresignUpload(ctx, fileKey, req.ContentType, UploadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signed URL: %w", err)
	}

	return &model.SignUploadResponse{
		SignedURL: signedURL,
		FileKey:   fileKey,
	}, nil
}

// BuildFileKey returns uploads/<userID>/<unixMillis>_<filename>.
func BuildFileKey(userID uuid.UUID, filename string, now time.Time) string {
	return fmt.Sprintf("uploads/%s/%d_%s", userID, now.UnixMilli(), filename)
}
