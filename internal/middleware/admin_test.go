package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lokalpro/internal/domain"
	"lokalpro/internal/middleware"
	"lokalpro/tests/mocks"
)

func newAdminTestApp(grants *mocks.AdminGrantRepository, user *domain.User, handlerCalled *bool) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(middleware.UserContextKey, user)
			c.Locals(middleware.UserIDContextKey, user.ID)
		}
		return c.Next()
	})

	app.Post("/admin/action", middleware.AdminRequired(grants), func(c *fiber.Ctx) error {
		*handlerCalled = true
		return c.JSON(fiber.Map{"success": true})
	})

	return app
}

func TestAdminRequired(t *testing.T) {
	t.Run("No Authenticated User", func(t *testing.T) {
		grants := new(mocks.AdminGrantRepository)
		handlerCalled := false
		app := newAdminTestApp(grants, nil, &handlerCalled)

		resp, err := app.Test(httptest.NewRequest("POST", "/admin/action", nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, handlerCalled)
		grants.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
	})

	t.Run("Authenticated Without Grant", func(t *testing.T) {
		user := &domain.User{ID: uuid.New()}
		grants := new(mocks.AdminGrantRepository)
		grants.On("IsAdmin", mock.Anything, user.ID).Return(false, nil).Once()

		handlerCalled := false
		app := newAdminTestApp(grants, user, &handlerCalled)

		resp, err := app.Test(httptest.NewRequest("POST", "/admin/action", nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.False(t, handlerCalled)
		grants.AssertExpectations(t)
	})

	t.Run("Authenticated With Grant", func(t *testing.T) {
		user := &domain.User{ID: uuid.New()}
		grants := new(mocks.AdminGrantRepository)
		grants.On("IsAdmin", mock.Anything, user.ID).Return(true, nil).Once()

		handlerCalled := false
		app := newAdminTestApp(grants, user, &handlerCalled)

		resp, err := app.Test(httptest.NewRequest("POST", "/admin/action", nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.True(t, handlerCalled)
	})
}
