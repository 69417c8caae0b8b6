package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lokalpro/internal/domain"
	"lokalpro/internal/middleware"
	"lokalpro/internal/service/directory"
)

type PublicHandler struct {
	directoryService directory.Service
}

func NewPublicHandler(directoryService directory.Service) *PublicHandler {
	return &PublicHandler{directoryService: directoryService}
}

func (h *PublicHandler) SearchProfiles(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	filter := domain.ProfileFilter{
		Query:    c.Query("q"),
		City:     c.Query("city"),
		Category: c.Query("category"),
	}
	if v := c.Query("verified"); v != "" {
		if verified, err := strconv.ParseBool(v); err == nil {
			filter.Verified = &verified
		}
	}

	result, err := h.directoryService.Search(c.Context(), filter, params)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func (h *PublicHandler) GetProfile(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return middleware.BadRequest("Profile slug is required")
	}

	profile, err := h.directoryService.GetBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.JSON(profile)
}

func (h *PublicHandler) GetFilters(c *fiber.Ctx) error {
	filters, err := h.directoryService.Filters(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(filters)
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
