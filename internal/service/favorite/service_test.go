package favorite_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"lokalpro/internal/domain"
	"lokalpro/internal/service/favorite"
	"lokalpro/tests/mocks"
)

func TestFavoriteService_Add(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		favoriteRepo := new(mocks.FavoriteRepository)
		profileRepo := new(mocks.ProfileRepository)
		svc := favorite.NewService(favoriteRepo, profileRepo)

		profileRepo.On("GetByID", ctx, profileID).
			Return(&domain.Profile{ID: profileID}, nil).Once()
		favoriteRepo.On("Add", ctx, userID, profileID).Return(nil).Once()

		err := svc.Add(ctx, userID, profileID)

		assert.NoError(t, err)
		favoriteRepo.AssertExpectations(t)
	})

	t.Run("Profile Not Found", func(t *testing.T) {
		favoriteRepo := new(mocks.FavoriteRepository)
		profileRepo := new(mocks.ProfileRepository)
		svc := favorite.NewService(favoriteRepo, profileRepo)

		profileRepo.On("GetByID", ctx, profileID).Return(nil, nil).Once()

		err := svc.Add(ctx, userID, profileID)

		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		favoriteRepo.AssertNotCalled(t, "Add", ctx, userID, profileID)
	})
}

func TestFavoriteService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	favoriteRepo := new(mocks.FavoriteRepository)
	profileRepo := new(mocks.ProfileRepository)
	svc := favorite.NewService(favoriteRepo, profileRepo)

	params := domain.PaginationParams{Page: 1, PageSize: 20}
	saved := []domain.Profile{{ID: uuid.New(), Name: "Andi Listrik"}}
	favoriteRepo.On("ListProfiles", ctx, userID, params).Return(saved, int64(1), nil).Once()

	result, err := svc.List(ctx, userID, params)

	assert.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, int64(1), result.TotalItems)
}
