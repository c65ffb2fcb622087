package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	videoJob "dadadu-backend/internal/domains/video/job"
	"dadadu-backend/internal/shared"
)

// Client enqueues background tasks from the API process.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

// EnqueueModerateVideo queues caption moderation for a new video.
// MaxRetry is zero on purpose: a failed classification marks the
// record "error" instead of being retried.
func (c *Client) EnqueueModerateVideo(ctx context.Context, videoID uuid.UUID) error {
	payload, err := json.Marshal(videoJob.ModerateVideoPayload{VideoID: videoID})
	if err != nil {
		return fmt.Errorf("failed to marshal moderation payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeModerateVideo, payload)

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueModeration),
		asynq.MaxRetry(0),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue moderation task: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
