package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lokalpro/internal/domain"
)

type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *ProfileRepository) GetBySlug(ctx context.Context, slug string) (*domain.Profile, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *ProfileRepository) Search(ctx context.Context, filter domain.ProfileFilter, params domain.PaginationParams) ([]domain.Profile, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]domain.Profile), args.Get(1).(int64), args.Error(2)
}

func (m *ProfileRepository) ListForModeration(ctx context.Context, params domain.PaginationParams) ([]domain.Profile, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Profile), args.Get(1).(int64), args.Error(2)
}

func (m *ProfileRepository) UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL *string) error {
	args := m.Called(ctx, id, avatarURL)
	return args.Error(0)
}

func (m *ProfileRepository) UpdateMediaURLs(ctx context.Context, id uuid.UUID, urls []string) error {
	args := m.Called(ctx, id, urls)
	return args.Error(0)
}

func (m *ProfileRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	args := m.Called(ctx, id, verified)
	return args.Error(0)
}

func (m *ProfileRepository) ListCities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *ProfileRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
