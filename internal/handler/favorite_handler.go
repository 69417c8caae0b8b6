package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lokalpro/internal/domain"
	"lokalpro/internal/middleware"
	"lokalpro/internal/service/favorite"
)

type FavoriteHandler struct {
	favoriteService favorite.Service
}

func NewFavoriteHandler(favoriteService favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	profileID, err := uuid.Parse(c.Params("profileId"))
	if err != nil {
		return middleware.BadRequest("Invalid profile ID")
	}

	if err := h.favoriteService.Add(c.Context(), userID, profileID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Profile saved",
	})
}

func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	profileID, err := uuid.Parse(c.Params("profileId"))
	if err != nil {
		return middleware.BadRequest("Invalid profile ID")
	}

	if err := h.favoriteService.Remove(c.Context(), userID, profileID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	params := getPaginationParams(c)

	result, err := h.favoriteService.List(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
