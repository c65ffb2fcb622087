package repository

import (
	"context"

	"github.com/google/uuid"

	"dadadu-backend/internal/domains/post/model"
)

// PostRepository is the data access surface for post records.
type PostRepository interface {
	// UpdateAssetURL sets exactly one of video_url / thumbnail_url on
	// the post matching BOTH the post id and the owner id — the dual
	// filter is the authorization check. Returns the updated row, or
	// model.ErrPostNotFound when zero rows matched.
	UpdateAssetURL(ctx context.Context, postID, userID uuid.UUID, assetType, url string) (*model.Post, error)
}
