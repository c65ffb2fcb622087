package model

import (
	"time"

	"github.com/google/uuid"
)

// Asset types recordable on a post.
const (
	AssetTypeVideo     = "video"
	AssetTypeThumbnail = "thumbnail"
)

// Post is a content draft owned by a user. The asset recorder fills
// in the CDN URLs after the client finishes uploading to storage.
type Post struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	VideoURL     *string   `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
