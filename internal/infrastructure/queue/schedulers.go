package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	videoJob "dadadu-backend/internal/domains/video/job"
	"dadadu-backend/internal/shared"
	"dadadu-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
	}
}

func (s *Scheduler) RegisterVisibilityJobs() error {
	return s.registerRefreshVisibilityJob()
}

// ================================================
// JOB: Refresh Video Visibility (Every 10 minutes)
// ================================================
// The refresh is idempotent over current diamond counts, so a failed
// run needs no retry within the cycle — the next tick reconverges.
func (s *Scheduler) registerRefreshVisibilityJob() error {
	payload, err := json.Marshal(videoJob.RefreshVisibilityPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeRefreshVisibility, payload)

	_, err = s.scheduler.Register(
		"*/10 * * * *", // Every 10 minutes
		task,
		asynq.Queue(shared.QueueVisibility),
		asynq.MaxRetry(0),
		asynq.Timeout(5*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register RefreshVisibility job", err)
		return err
	}

	logger.Info("✓ Registered RefreshVisibility: every 10 minutes", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
