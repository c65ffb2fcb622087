package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dadadu-backend/internal/domains/referral/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresClickRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresClickRepository(pool *pgxpool.Pool) ClickRepository {
	return &postgresClickRepository{pool: pool}
}

func (r *postgresClickRepository) InsertClick(ctx context.Context, click *model.ReferralClick) error {
	query := `
		INSERT INTO referral_clicks (referral_id, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		click.ReferralID,
		click.IPAddress,
		click.UserAgent,
		click.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert referral click: %w", err)
	}

	return nil
}
