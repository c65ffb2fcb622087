package main

import (
	"github.com/hibiken/asynq"

	videoJob "dadadu-backend/internal/domains/video/job"
	"dadadu-backend/internal/shared"
	"dadadu-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	moderateVideo     *videoJob.ModerateVideoHandler
	refreshVisibility *videoJob.RefreshVisibilityHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		moderateVideo:     videoJob.NewModerateVideoHandler(c.VideoService),
		refreshVisibility: videoJob.NewRefreshVisibilityHandler(c.VideoService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Moderation tasks
	mux.HandleFunc(shared.TypeModerateVideo, h.moderateVideo.ProcessTask)

	// Scheduled maintenance tasks
	mux.HandleFunc(shared.TypeRefreshVisibility, h.refreshVisibility.ProcessTask)
}
