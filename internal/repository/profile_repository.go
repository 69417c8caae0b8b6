package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"lokalpro/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Profile, error)
	Search(ctx context.Context, filter domain.ProfileFilter, params domain.PaginationParams) ([]domain.Profile, int64, error)
	ListForModeration(ctx context.Context, params domain.PaginationParams) ([]domain.Profile, int64, error)
	UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL *string) error
	UpdateMediaURLs(ctx context.Context, id uuid.UUID, urls []string) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	ListCities(ctx context.Context) ([]string, error)
	ListCategories(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (profile_id, slug, name, city, categories, description, phone, rating, review_count, is_verified, avatar_url, media_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		profile.ID, profile.Slug, profile.Name, profile.City, profile.Categories,
		profile.Description, profile.Phone, profile.Rating, profile.ReviewCount,
		profile.IsVerified, profile.AvatarURL, profile.MediaURLs,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE profile_id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetBySlug(ctx context.Context, slug string) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE slug = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &profile, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Search(ctx context.Context, filter domain.ProfileFilter, params domain.PaginationParams) ([]domain.Profile, int64, error) {
	params.Validate()

	where := "deleted_at IS NULL"
	args := []interface{}{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		where += fmt.Sprintf(" AND city = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND $%d = ANY(categories)", len(args))
	}
	if filter.Verified != nil {
		args = append(args, *filter.Verified)
		where += fmt.Sprintf(" AND is_verified = $%d", len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM profiles WHERE " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := fmt.Sprintf(`
		SELECT * FROM profiles
		WHERE %s
		ORDER BY is_verified DESC, rating DESC, name ASC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	var profiles []domain.Profile
	err := r.db.SelectContext(ctx, &profiles, query, args...)
	return profiles, total, err
}

func (r *profileRepository) ListForModeration(ctx context.Context, params domain.PaginationParams) ([]domain.Profile, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM profiles WHERE deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM profiles
		WHERE deleted_at IS NULL
		ORDER BY is_verified ASC, created_at DESC
		LIMIT $1 OFFSET $2`

	var profiles []domain.Profile
	err := r.db.SelectContext(ctx, &profiles, query, params.PageSize, params.Offset())
	return profiles, total, err
}

func (r *profileRepository) UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL *string) error {
	query := `
		UPDATE profiles SET avatar_url = $2, updated_at = NOW()
		WHERE profile_id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, avatarURL)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) UpdateMediaURLs(ctx context.Context, id uuid.UUID, urls []string) error {
	query := `
		UPDATE profiles SET media_urls = $2, updated_at = NOW()
		WHERE profile_id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, pq.StringArray(urls))
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := `
		UPDATE profiles SET is_verified = $2, updated_at = NOW()
		WHERE profile_id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, verified)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) ListCities(ctx context.Context) ([]string, error) {
	var cities []string
	query := `SELECT DISTINCT city FROM profiles WHERE deleted_at IS NULL ORDER BY city`
	err := r.db.SelectContext(ctx, &cities, query)
	return cities, err
}

func (r *profileRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	query := `SELECT DISTINCT unnest(categories) AS category FROM profiles WHERE deleted_at IS NULL ORDER BY category`
	err := r.db.SelectContext(ctx, &categories, query)
	return categories, err
}

func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE profiles SET deleted_at = NOW() WHERE profile_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
