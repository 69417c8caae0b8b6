package directory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"lokalpro/internal/domain"
	"lokalpro/internal/repository"
)

const (
	profileCacheTTL = 5 * time.Minute
	filtersCacheTTL = 10 * time.Minute
)

// Service serves the public search/browse surface. Reads go through a
// nil-guarded cache-aside layer; mutating services invalidate the keys.
type Service interface {
	Search(ctx context.Context, filter domain.ProfileFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Profile], error)
	GetBySlug(ctx context.Context, slug string) (*domain.Profile, error)
	Filters(ctx context.Context) (*domain.DirectoryFilters, error)
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

func (s *service) Search(ctx context.Context, filter domain.ProfileFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Profile], error) {
	profiles, total, err := s.profileRepo.Search(ctx, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Profile]{}, err
	}
	return domain.NewPaginatedResponse(profiles, params.Page, params.PageSize, total), nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*domain.Profile, error) {
	cacheKey := "directory:profile:" + slug

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var profile domain.Profile
			if err := json.Unmarshal([]byte(cached), &profile); err == nil {
				return &profile, nil
			}
		}
	}

	profile, err := s.profileRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	if s.redis != nil {
		if payload, err := json.Marshal(profile); err == nil {
			_ = s.redis.Set(ctx, cacheKey, payload, profileCacheTTL).Err()
		}
	}

	return profile, nil
}

func (s *service) Filters(ctx context.Context) (*domain.DirectoryFilters, error) {
	cacheKey := "directory:filters"

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var filters domain.DirectoryFilters
			if err := json.Unmarshal([]byte(cached), &filters); err == nil {
				return &filters, nil
			}
		}
	}

	cities, err := s.profileRepo.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.profileRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	filters := &domain.DirectoryFilters{
		Cities:     cities,
		Categories: categories,
	}

	if s.redis != nil {
		if payload, err := json.Marshal(filters); err == nil {
			_ = s.redis.Set(ctx, cacheKey, payload, filtersCacheTTL).Err()
		}
	}

	return filters, nil
}
