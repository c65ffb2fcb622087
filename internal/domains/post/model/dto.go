package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// POST DTOs
// ========================================

// RecordAssetRequest records an uploaded file's CDN URL on a post.
type RecordAssetRequest struct {
	PostID    string `json:"postId"`
	FileKey   string `json:"fileKey"`
	AssetType string `json:"assetType"` // "video" | "thumbnail"
}

// Validate rejects bad input before any database call is made.
func (r RecordAssetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PostID,
			validation.Required.Error("postId is required"),
			is.UUID.Error("postId must be a valid UUID"),
		),
		validation.Field(&r.FileKey,
			validation.Required.Error("fileKey is required"),
		),
		validation.Field(&r.AssetType,
			validation.Required.Error("assetType is required"),
			validation.In(AssetTypeVideo, AssetTypeThumbnail).
				Error(`Invalid asset type. Must be "video" or "thumbnail".`),
		),
	)
}

// RecordAssetResponse returns the computed URL and the updated row.
type RecordAssetResponse struct {
	Message     string `json:"message"`
	CDNURL      string `json:"cdnUrl"`
	UpdatedPost *Post  `json:"updatedPost"`
}
