package repository

import (
	"context"

	"github.com/google/uuid"

	"dadadu-backend/internal/domains/video/model"
)

// VideoRepository is the data access surface for video records.
type VideoRepository interface {
	// Create inserts a new video record.
	Create(ctx context.Context, video *model.Video) error

	// GetByID fetches a single video; model.ErrVideoNotFound when missing.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)

	// ListByModerationStatus returns all videos with the given
	// moderation status.
	ListByModerationStatus(ctx context.Context, status string) ([]model.Video, error)

	// UpdateModerationStatus sets the moderation status of one video.
	UpdateModerationStatus(ctx context.Context, id uuid.UUID, status string) error

	// UpdateVisibilityBatch applies all updates inside a single
	// transaction: either every row is updated or none is.
	UpdateVisibilityBatch(ctx context.Context, updates []model.VisibilityUpdate) error
}
