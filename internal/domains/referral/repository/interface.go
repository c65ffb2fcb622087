package repository

import (
	"context"

	"dadadu-backend/internal/domains/referral/model"
)

// ClickRepository appends referral click log entries.
type ClickRepository interface {
	InsertClick(ctx context.Context, click *model.ReferralClick) error
}
