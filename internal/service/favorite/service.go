package favorite

import (
	"context"

	"github.com/google/uuid"

	"lokalpro/internal/domain"
	"lokalpro/internal/repository"
)

type Service interface {
	Add(ctx context.Context, userID, profileID uuid.UUID) error
	Remove(ctx context.Context, userID, profileID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Profile], error)
}

type service struct {
	favoriteRepo repository.FavoriteRepository
	profileRepo  repository.ProfileRepository
}

func NewService(favoriteRepo repository.FavoriteRepository, profileRepo repository.ProfileRepository) Service {
	return &service{
		favoriteRepo: favoriteRepo,
		profileRepo:  profileRepo,
	}
}

// Add saves a profile for the user. Saving an already-saved profile is a
// no-op.
func (s *service) Add(ctx context.Context, userID, profileID uuid.UUID) error {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrProfileNotFound
	}

	return s.favoriteRepo.Add(ctx, userID, profileID)
}

func (s *service) Remove(ctx context.Context, userID, profileID uuid.UUID) error {
	return s.favoriteRepo.Remove(ctx, userID, profileID)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Profile], error) {
	profiles, total, err := s.favoriteRepo.ListProfiles(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Profile]{}, err
	}
	return domain.NewPaginatedResponse(profiles, params.Page, params.PageSize, total), nil
}
