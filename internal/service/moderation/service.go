package moderation

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"lokalpro/internal/domain"
	"lokalpro/internal/repository"
)

// Service backs the admin moderation panel's non-media operations.
type Service interface {
	ListProfiles(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Profile], error)
	SetVerified(ctx context.Context, profileID uuid.UUID, verified bool) (*domain.Profile, error)
}

type service struct {
	profileRepo repository.ProfileRepository
	redis       *redis.Client
}

func NewService(profileRepo repository.ProfileRepository, redis *redis.Client) Service {
	return &service{
		profileRepo: profileRepo,
		redis:       redis,
	}
}

func (s *service) ListProfiles(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Profile], error) {
	profiles, total, err := s.profileRepo.ListForModeration(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Profile]{}, err
	}
	return domain.NewPaginatedResponse(profiles, params.Page, params.PageSize, total), nil
}

func (s *service) SetVerified(ctx context.Context, profileID uuid.UUID, verified bool) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	if err := s.profileRepo.SetVerified(ctx, profileID, verified); err != nil {
		return nil, err
	}
	profile.IsVerified = verified

	if s.redis != nil {
		_ = s.redis.Del(ctx, "directory:profile:"+profile.Slug).Err()
	}

	return profile, nil
}
