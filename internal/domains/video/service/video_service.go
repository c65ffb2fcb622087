package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dadadu-backend/internal/domains/video/model"
	"dadadu-backend/internal/domains/video/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type videoService struct {
	videoRepo  repository.VideoRepository
	classifier Classifier
	enqueuer   Enqueuer
}

func NewVideoService(
	videoRepo repository.VideoRepository,
	classifier Classifier,
	enqueuer Enqueuer,
) ServiceInterface {
	return &videoService{
		videoRepo:  videoRepo,
		classifier: classifier,
		enqueuer:   enqueuer,
	}
}

// =====================================================
// CREATE VIDEO
// =====================================================

func (s *videoService) CreateVideo(
	ctx context.Context,
	userID uuid.UUID,
	req model.CreateVideoRequest,
) (*model.Video, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Build entity. Moderation status stays empty until the
	// worker has classified the caption; the video starts hidden.
	video := &model.Video{
		ID:               uuid.New(),
		UserID:           userID,
		Caption:          req.Caption,
		ModerationStatus: "",
		Diamonds:         0,
		VisibilityLevel:  0,
		Status:           model.StatusHidden,
		Trending:         false,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	// Step 3: Save to database
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	// Step 4: Queue caption moderation. Without the task the video
	// would never leave the unmoderated state, so enqueue failure
	// fails the request.
	if err := s.enqueuer.EnqueueModerateVideo(ctx, video.ID); err != nil {
		return nil, fmt.Errorf("failed to enqueue moderation: %w", err)
	}

	return video, nil
}
