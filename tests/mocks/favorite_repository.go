package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lokalpro/internal/domain"
)

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) Add(ctx context.Context, userID, profileID uuid.UUID) error {
	args := m.Called(ctx, userID, profileID)
	return args.Error(0)
}

func (m *FavoriteRepository) Remove(ctx context.Context, userID, profileID uuid.UUID) error {
	args := m.Called(ctx, userID, profileID)
	return args.Error(0)
}

func (m *FavoriteRepository) ListProfiles(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Profile, int64, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]domain.Profile), args.Get(1).(int64), args.Error(2)
}
