package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lokalpro/internal/domain"
)

type AdminGrantRepository struct {
	mock.Mock
}

func (m *AdminGrantRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *AdminGrantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.AdminGrant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminGrant), args.Error(1)
}

func (m *AdminGrantRepository) Grant(ctx context.Context, grant *domain.AdminGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *AdminGrantRepository) Revoke(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *AdminGrantRepository) List(ctx context.Context) ([]domain.AdminGrant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AdminGrant), args.Error(1)
}
