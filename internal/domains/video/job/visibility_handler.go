package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"dadadu-backend/internal/domains/video/service"
	"dadadu-backend/pkg/logger"
)

// RefreshVisibilityPayload is empty today; the refresh is purely a
// function of current diamond counts.
type RefreshVisibilityPayload struct {
	Date time.Time `json:"date,omitempty"`
}

type RefreshVisibilityHandler struct {
	videoService service.ServiceInterface
}

func NewRefreshVisibilityHandler(videoService service.ServiceInterface) *RefreshVisibilityHandler {
	return &RefreshVisibilityHandler{
		videoService: videoService,
	}
}

func (h *RefreshVisibilityHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload RefreshVisibilityPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("Unmarshal fail due to ", err)
		return err
	}

	log.Info().Msg("Starting visibility refresh")

	// Failures are logged and swallowed: the job is idempotent and
	// the next scheduled run reconverges on current diamond counts.
	updated, err := h.videoService.RefreshVisibility(ctx)
	if err != nil {
		logger.Error("Error updating video visibility levels", err)
		return nil
	}

	log.Info().
		Int("videos_updated", updated).
		Msg("Updated video visibility levels successfully")

	return nil
}
