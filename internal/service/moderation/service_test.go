package moderation_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"lokalpro/internal/domain"
	"lokalpro/internal/service/moderation"
	"lokalpro/tests/mocks"
)

func TestModerationService_SetVerified(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		profileRepo := new(mocks.ProfileRepository)
		svc := moderation.NewService(profileRepo, nil)

		profileRepo.On("GetByID", ctx, profileID).
			Return(&domain.Profile{ID: profileID, Slug: "budi-cat-surabaya"}, nil).Once()
		profileRepo.On("SetVerified", ctx, profileID, true).Return(nil).Once()

		profile, err := svc.SetVerified(ctx, profileID, true)

		assert.NoError(t, err)
		assert.True(t, profile.IsVerified)
		profileRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		profileRepo := new(mocks.ProfileRepository)
		svc := moderation.NewService(profileRepo, nil)

		profileRepo.On("GetByID", ctx, profileID).Return(nil, nil).Once()

		_, err := svc.SetVerified(ctx, profileID, true)

		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}

func TestModerationService_ListProfiles(t *testing.T) {
	ctx := context.Background()
	profileRepo := new(mocks.ProfileRepository)
	svc := moderation.NewService(profileRepo, nil)

	params := domain.PaginationParams{Page: 1, PageSize: 20}
	profiles := []domain.Profile{
		{ID: uuid.New(), Name: "Budi Cat & Renovasi", IsVerified: false},
		{ID: uuid.New(), Name: "Andi Listrik", IsVerified: true},
	}
	profileRepo.On("ListForModeration", ctx, params).Return(profiles, int64(2), nil).Once()

	result, err := svc.ListProfiles(ctx, params)

	assert.NoError(t, err)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, int64(2), result.TotalItems)
}
