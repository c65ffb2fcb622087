package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dadadu-backend/internal/domains/post/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

// =====================================================
// UPDATE ASSET URL
// =====================================================

func (r *postgresPostRepository) UpdateAssetURL(
	ctx context.Context,
	postID, userID uuid.UUID,
	assetType, url string,
) (*model.Post, error) {
	var column string
	switch assetType {
	case model.AssetTypeVideo:
		column = "video_url"
	case model.AssetTypeThumbnail:
		column = "thumbnail_url"
	default:
		// Callers validate the enum first; this guards the SQL below
		// from ever interpolating an unexpected column name.
		return nil, fmt.Errorf("invalid asset type: %q", assetType)
	}

	query := fmt.Sprintf(`
		UPDATE posts
		SET %s = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, video_url, thumbnail_url, created_at, updated_at
	`, column)

	post := &model.Post{}
	err := r.pool.QueryRow(ctx, query, postID, userID, url).Scan(
		&post.ID,
		&post.UserID,
		&post.VideoURL,
		&post.ThumbnailURL,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing post and foreign ownership look identical here.
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post asset url: %w", err)
	}

	return post, nil
}
