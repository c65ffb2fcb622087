package job

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"dadadu-backend/internal/domains/video/service"
	"dadadu-backend/pkg/logger"
)

// ModerateVideoPayload identifies the freshly created video whose
// caption needs classification.
type ModerateVideoPayload struct {
	VideoID uuid.UUID `json:"video_id"`
}

type ModerateVideoHandler struct {
	videoService service.ServiceInterface
}

func NewModerateVideoHandler(videoService service.ServiceInterface) *ModerateVideoHandler {
	return &ModerateVideoHandler{
		videoService: videoService,
	}
}

func (h *ModerateVideoHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload ModerateVideoPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("Unmarshal fail due to ", err)
		return err
	}

	status, err := h.videoService.ModerateCaption(ctx, payload.VideoID)
	if err != nil {
		// Classifier failures are absorbed inside the service; an
		// error here means the record itself could not be read or
		// written. The task is registered with zero retries.
		logger.Error("Caption moderation task failed", err)
		return err
	}

	log.Info().
		Str("video_id", payload.VideoID.String()).
		Str("status", status).
		Msg("Caption moderated")

	return nil
}
