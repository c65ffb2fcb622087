package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"dadadu-backend/internal/domains/post/model"
	"dadadu-backend/internal/domains/post/repository"
)

// ErrCDNNotConfigured means the CDN hostname setting is absent; a
// server fault, surfaced as 500 by the handler.
var ErrCDNNotConfigured = errors.New("CDN hostname missing")

// ServiceInterface is the post domain's business logic surface.
type ServiceInterface interface {
	RecordAsset(ctx context.Context, userID uuid.UUID, req model.RecordAssetRequest) (*model.RecordAssetResponse, error)
}

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type postService struct {
	postRepo    repository.PostRepository
	cdnHostname string
}

func NewPostService(postRepo repository.PostRepository, cdnHostname string) ServiceInterface {
	return &postService{
		postRepo:    postRepo,
		cdnHostname: cdnHostname,
	}
}

// RecordAsset builds the public CDN URL for an uploaded file key and
// persists it onto the owner's post.
func (s *postService) RecordAsset(
	ctx context.Context,
	userID uuid.UUID,
	req model.RecordAssetRequest,
) (*model.RecordAssetResponse, error) {
	// Step 1: Validate before touching the database
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.cdnHostname == "" {
		return nil, ErrCDNNotConfigured
	}

	postID, err := uuid.Parse(req.PostID)
	if err != nil {
		return nil, fmt.Errorf("invalid postId: %w", err)
	}

	// Step 2: Hostname + file key is the whole URL scheme
	cdnURL := fmt.Sprintf("https://%s/%s", s.cdnHostname, req.FileKey)

	// Step 3: Update exactly one column; ownership enforced in SQL
	post, err := s.postRepo.UpdateAssetURL(ctx, postID, userID, req.AssetType, cdnURL)
	if err != nil {
		return nil, err
	}

	return &model.RecordAssetResponse{
		Message:     "Asset URL recorded successfully",
		CDNURL:      cdnURL,
		UpdatedPost: post,
	}, nil
}
