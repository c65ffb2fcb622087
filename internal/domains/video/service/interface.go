package service

import (
	"context"

	"github.com/google/uuid"

	"dadadu-backend/internal/domains/video/model"
)

// Classifier labels caption text for safety. The production
// implementation calls a chat-completion model.
type Classifier interface {
	ClassifyCaption(ctx context.Context, text string) (string, error)
}

// Enqueuer hands tasks to the background worker.
type Enqueuer interface {
	EnqueueModerateVideo(ctx context.Context, videoID uuid.UUID) error
}

// ServiceInterface is the video domain's business logic surface.
type ServiceInterface interface {
	// CreateVideo inserts a new video record and queues its caption
	// for moderation.
	CreateVideo(ctx context.Context, userID uuid.UUID, req model.CreateVideoRequest) (*model.Video, error)

	// ModerateCaption classifies the caption of one video and writes
	// the resulting moderation status. Classifier failures fail soft:
	// the video is marked "error" and no error is returned.
	ModerateCaption(ctx context.Context, videoID uuid.UUID) (string, error)

	// RefreshVisibility recomputes visibility tiers for every video
	// whose moderation passed, applied as one atomic batch. Returns
	// the number of rows updated.
	RefreshVisibility(ctx context.Context) (int, error)
}
