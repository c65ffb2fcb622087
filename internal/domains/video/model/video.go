package model

import (
	"time"

	"github.com/google/uuid"
)

// Moderation statuses. Absent (empty string) until the caption has
// been classified.
const (
	ModerationStatusSafe      = "safe"
	ModerationStatusSensitive = "sensitive"
	ModerationStatusBlocked   = "blocked"
	ModerationStatusError     = "error"
)

// Visibility statuses
const (
	StatusActive = "active"
	StatusHidden = "hidden"
)

// Video is a piece of user content. ModerationStatus is written once
// by the caption moderator; VisibilityLevel/Status/Trending are
// recomputed on a schedule as Diamonds changes.
type Video struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Caption          string    `json:"caption"`
	ModerationStatus string    `json:"moderation_status"`
	Diamonds         int       `json:"diamonds"`
	VisibilityLevel  int       `json:"visibility_level"` // 0-3
	Status           string    `json:"status"`           // hidden | active
	Trending         bool      `json:"trending"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// VisibilityUpdate is one row of a scheduled visibility refresh.
type VisibilityUpdate struct {
	ID              uuid.UUID
	VisibilityLevel int
	Status          string
	Trending        bool
}
