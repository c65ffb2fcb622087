package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dadadu-backend/internal/domains/video/model"
	"dadadu-backend/pkg/logger"
)

// =====================================================
// CAPTION MODERATION
// =====================================================

// ParseLabel maps raw classifier output to a moderation status.
// The output is lower-cased and scanned for substrings in priority
// order: "blocked" beats "sensitive"; anything else is "safe".
// Ambiguous output deliberately fails open toward "safe" — the
// classifier is trusted to be more specific than precise. Keep this
// parse as-is; do not harden it against phrasing drift.
func ParseLabel(output string) string {
	lowered := strings.ToLower(output)

	if strings.Contains(lowered, model.ModerationStatusBlocked) {
		return model.ModerationStatusBlocked
	}
	if strings.Contains(lowered, model.ModerationStatusSensitive) {
		return model.ModerationStatusSensitive
	}
	return model.ModerationStatusSafe
}

func (s *videoService) ModerateCaption(ctx context.Context, videoID uuid.UUID) (string, error) {
	// Step 1: Fetch the video
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("failed to load video for moderation: %w", err)
	}

	// Step 2: Empty caption short-circuits to safe, no model call
	if video.Caption == "" {
		logger.Info("No caption to moderate", map[string]interface{}{
			"video_id": videoID,
		})
		if err := s.videoRepo.UpdateModerationStatus(ctx, videoID, model.ModerationStatusSafe); err != nil {
			return "", fmt.Errorf("failed to mark empty caption safe: %w", err)
		}
		return model.ModerationStatusSafe, nil
	}

	// Step 3: Classify. A failed call marks the video "error" rather
	// than failing the task — there is no retry, a human or a later
	// re-submission picks these up.
	output, err := s.classifier.ClassifyCaption(ctx, video.Caption)
	if err != nil {
		logger.Error("Caption classification failed", err)
		if updErr := s.videoRepo.UpdateModerationStatus(ctx, videoID, model.ModerationStatusError); updErr != nil {
			return "", fmt.Errorf("failed to mark video errored: %w", updErr)
		}
		return model.ModerationStatusError, nil
	}

	// Step 4: Persist the parsed label
	status := ParseLabel(output)
	if err := s.videoRepo.UpdateModerationStatus(ctx, videoID, status); err != nil {
		return "", fmt.Errorf("failed to update moderation status: %w", err)
	}

	logger.Info("Moderation result", map[string]interface{}{
		"video_id": videoID,
		"status":   status,
	})

	return status, nil
}
