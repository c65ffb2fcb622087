package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dadadu-backend/internal/domains/video/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresVideoRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresVideoRepository(pool *pgxpool.Pool) VideoRepository {
	return &postgresVideoRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresVideoRepository) Create(ctx context.Context, video *model.Video) error {
	query := `
		INSERT INTO videos (
			id, user_id, caption, moderation_status,
			diamonds, visibility_level, status, trending,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		video.ID,
		video.UserID,
		video.Caption,
		video.ModerationStatus,
		video.Diamonds,
		video.VisibilityLevel,
		video.Status,
		video.Trending,
		video.CreatedAt,
		video.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	query := `
		SELECT
			id, user_id, caption, moderation_status,
			diamonds, visibility_level, status, trending,
			created_at, updated_at
		FROM videos
		WHERE id = $1
	`

	video := &model.Video{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&video.ID,
		&video.UserID,
		&video.Caption,
		&video.ModerationStatus,
		&video.Diamonds,
		&video.VisibilityLevel,
		&video.Status,
		&video.Trending,
		&video.CreatedAt,
		&video.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return video, nil
}

// =====================================================
// LIST BY MODERATION STATUS
// =====================================================

func (r *postgresVideoRepository) ListByModerationStatus(ctx context.Context, status string) ([]model.Video, error) {
	query := `
		SELECT
			id, user_id, caption, moderation_status,
			diamonds, visibility_level, status, trending,
			created_at, updated_at
		FROM videos
		WHERE moderation_status = $1
	`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var video model.Video
		if err := rows.Scan(
			&video.ID,
			&video.UserID,
			&video.Caption,
			&video.ModerationStatus,
			&video.Diamonds,
			&video.VisibilityLevel,
			&video.Status,
			&video.Trending,
			&video.CreatedAt,
			&video.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate videos: %w", err)
	}

	return videos, nil
}

// =====================================================
// UPDATE MODERATION STATUS
// =====================================================

func (r *postgresVideoRepository) UpdateModerationStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE videos
		SET moderation_status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update moderation status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrVideoNotFound
	}

	return nil
}

// =====================================================
// UPDATE VISIBILITY BATCH
// =====================================================

// UpdateVisibilityBatch applies the whole tier assignment inside one
// transaction. A crash mid-refresh must not leave half the rows on
// the new tiers.
func (r *postgresVideoRepository) UpdateVisibilityBatch(ctx context.Context, updates []model.VisibilityUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE videos
		SET visibility_level = $2, status = $3, trending = $4, updated_at = NOW()
		WHERE id = $1
	`

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(query, u.ID, u.VisibilityLevel, u.Status, u.Trending)
	}

	results := tx.SendBatch(ctx, batch)
	for range updates {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to apply visibility update: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit visibility batch: %w", err)
	}

	return nil
}
