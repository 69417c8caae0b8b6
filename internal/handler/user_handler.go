package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lokalpro/internal/domain"
	"lokalpro/internal/middleware"
	"lokalpro/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	current := middleware.GetCurrentUser(c)
	if current == nil {
		return middleware.Unauthorized("User not authenticated")
	}
	return c.JSON(current)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.userService.Update(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.JSON(updated)
}
