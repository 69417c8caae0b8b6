package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lokalpro/internal/domain"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, profileID uuid.UUID) error
	Remove(ctx context.Context, userID, profileID uuid.UUID) error
	ListProfiles(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Profile, int64, error)
}

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, profileID uuid.UUID) error {
	query := `
		INSERT INTO favorites (user_id, profile_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, profile_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, userID, profileID)
	return err
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, profileID uuid.UUID) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND profile_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, profileID)
	return err
}

func (r *favoriteRepository) ListProfiles(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Profile, int64, error) {
	params.Validate()

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM favorites f
		JOIN profiles p ON p.profile_id = f.profile_id AND p.deleted_at IS NULL
		WHERE f.user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT p.*
		FROM favorites f
		JOIN profiles p ON p.profile_id = f.profile_id AND p.deleted_at IS NULL
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3`

	var profiles []domain.Profile
	err := r.db.SelectContext(ctx, &profiles, query, userID, params.PageSize, params.Offset())
	return profiles, total, err
}
