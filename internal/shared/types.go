package shared

// ========================================
// ASYNQ TASK TYPES
// ========================================

const (
	// TypeModerateVideo classifies a freshly created video's caption.
	// Enqueued by the API when a video record is created.
	TypeModerateVideo = "video:moderate"

	// TypeRefreshVisibility recomputes visibility tiers for all videos
	// that passed moderation. Registered with the scheduler.
	TypeRefreshVisibility = "video:refresh_visibility"
)

// ========================================
// QUEUE NAMES
// ========================================

const (
	QueueModeration = "moderation"
	QueueVisibility = "visibility"
)
