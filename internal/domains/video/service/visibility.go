package service

import (
	"context"
	"fmt"

	"dadadu-backend/internal/domains/video/model"
	"dadadu-backend/pkg/logger"
)

// =====================================================
// VISIBILITY REFRESH
// =====================================================

// VisibilityFor maps a diamond count onto the visibility ladder.
//
//	>=5  -> level 3, active, trending
//	3-4  -> level 2, active
//	1-2  -> level 1, active
//	0    -> level 0, hidden
//
// The mapping is a pure function of the current count, so re-applying
// it is idempotent.
func VisibilityFor(diamonds int) (level int, status string, trending bool) {
	switch {
	case diamonds >= 5:
		return 3, model.StatusActive, true
	case diamonds >= 3:
		return 2, model.StatusActive, false
	case diamonds >= 1:
		return 1, model.StatusActive, false
	default:
		return 0, model.StatusHidden, false
	}
}

func (s *videoService) RefreshVisibility(ctx context.Context) (int, error) {
	// Only videos that passed moderation are ranked. Everything else
	// is untouched regardless of diamonds.
	videos, err := s.videoRepo.ListByModerationStatus(ctx, model.ModerationStatusSafe)
	if err != nil {
		return 0, fmt.Errorf("failed to list safe videos: %w", err)
	}

	if len(videos) == 0 {
		logger.Info("No videos to update visibility for", nil)
		return 0, nil
	}

	updates := make([]model.VisibilityUpdate, 0, len(videos))
	for _, video := range videos {
		level, status, trending := VisibilityFor(video.Diamonds)
		updates = append(updates, model.VisibilityUpdate{
			ID:              video.ID,
			VisibilityLevel: level,
			Status:          status,
			Trending:        trending,
		})
	}

	// Single all-or-nothing batch; see VideoRepository.UpdateVisibilityBatch.
	if err := s.videoRepo.UpdateVisibilityBatch(ctx, updates); err != nil {
		return 0, fmt.Errorf("failed to apply visibility updates: %w", err)
	}

	logger.Info("Updated video visibility levels", map[string]interface{}{
		"count": len(updates),
	})

	return len(updates), nil
}
