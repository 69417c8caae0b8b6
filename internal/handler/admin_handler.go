package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lokalpro/internal/domain"
	"lokalpro/internal/middleware"
	"lokalpro/internal/service/moderation"
)

type AdminHandler struct {
	moderationService moderation.Service
}

func NewAdminHandler(moderationService moderation.Service) *AdminHandler {
	return &AdminHandler{moderationService: moderationService}
}

func (h *AdminHandler) ListProfiles(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.moderationService.ListProfiles(c.Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func (h *AdminHandler) SetVerified(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("profileId"))
	if err != nil {
		return middleware.BadRequest("Invalid profile ID")
	}

	var input struct {
		Verified *bool `json:"verified"`
	}
	if err := c.BodyParser(&input); err != nil || input.Verified == nil {
		return middleware.BadRequest("Field 'verified' is required")
	}

	profile, err := h.moderationService.SetVerified(c.Context(), profileID, *input.Verified)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.JSON(profile)
}
