package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"lokalpro/internal/domain"
	"lokalpro/internal/service/user"
	"lokalpro/tests/mocks"
)

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Updates Name And City", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo)

		existing := &domain.User{ID: userID, FullName: "Wati Rahayu"}
		userRepo.On("GetByID", ctx, userID).Return(existing, nil).Once()
		userRepo.On("Update", ctx, existing).Return(nil).Once()

		name := "Wati R. Santoso"
		city := "Bandung"
		updated, err := svc.Update(ctx, userID, domain.UpdateUserInput{FullName: &name, City: &city})

		assert.NoError(t, err)
		assert.Equal(t, "Wati R. Santoso", updated.FullName)
		assert.Equal(t, "Bandung", *updated.City)
		userRepo.AssertExpectations(t)
	})

	t.Run("Rehashes Password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo)

		existing := &domain.User{ID: userID, PasswordHash: "old-hash"}
		userRepo.On("GetByID", ctx, userID).Return(existing, nil).Once()
		userRepo.On("Update", ctx, existing).Return(nil).Once()

		password := "newpassword123"
		updated, err := svc.Update(ctx, userID, domain.UpdateUserInput{Password: &password})

		assert.NoError(t, err)
		assert.NotEqual(t, "old-hash", updated.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(password)))
	})

	t.Run("User Not Found", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo)

		userRepo.On("GetByID", ctx, userID).Return(nil, nil).Once()

		_, err := svc.Update(ctx, userID, domain.UpdateUserInput{})

		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}
