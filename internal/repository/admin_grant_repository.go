package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lokalpro/internal/domain"
)

// AdminGrantRepository reads the admin-grant relation. The service only
// queries it; Grant and Revoke exist for the operator tooling.
type AdminGrantRepository interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.AdminGrant, error)
	Grant(ctx context.Context, grant *domain.AdminGrant) error
	Revoke(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context) ([]domain.AdminGrant, error)
}

type adminGrantRepository struct {
	db *sqlx.DB
}

func NewAdminGrantRepository(db *sqlx.DB) AdminGrantRepository {
	return &adminGrantRepository{db: db}
}

func (r *adminGrantRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM admin_grants WHERE user_id = $1)`
	err := r.db.GetContext(ctx, &exists, query, userID)
	return exists, err
}

func (r *adminGrantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.AdminGrant, error) {
	var grant domain.AdminGrant
	query := `SELECT * FROM admin_grants WHERE user_id = $1`

	err := r.db.GetContext(ctx, &grant, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &grant, nil
}

func (r *adminGrantRepository) Grant(ctx context.Context, grant *domain.AdminGrant) error {
	query := `
		INSERT INTO admin_grants (user_id, granted_by, note)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query, grant.UserID, grant.GrantedBy, grant.Note).Scan(&grant.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

func (r *adminGrantRepository) Revoke(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM admin_grants WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

func (r *adminGrantRepository) List(ctx context.Context) ([]domain.AdminGrant, error) {
	var grants []domain.AdminGrant
	query := `SELECT * FROM admin_grants ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &grants, query)
	return grants, err
}
