package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lokalpro/internal/domain"
	"lokalpro/internal/middleware"
	"lokalpro/internal/service/media"
	"lokalpro/internal/storage"
)

const maxUploadSize = 10 * 1024 * 1024

// MediaHandler exposes the admin media endpoints: avatar ingest, gallery
// object upload, gallery URL append, and media removal. All routes sit
// behind AuthRequired + AdminRequired.
type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) UploadAvatar(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("profileId"))
	if err != nil {
		return middleware.BadRequest("Invalid profile ID")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}
	if file.Size > maxUploadSize {
		return middleware.BadRequest("File size must be less than 10MB")
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	url, err := h.mediaService.UploadAvatar(c.Context(), profileID, fileReader)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		if errors.Is(err, media.ErrInvalidImage) {
			return middleware.BadRequest("File is not a supported image")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"url":     url,
	})
}

func (h *MediaHandler) UploadGallery(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("profileId"))
	if err != nil {
		return middleware.BadRequest("Invalid profile ID")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}
	if file.Size > maxUploadSize {
		return middleware.BadRequest("File size must be less than 10MB")
	}

	objectKey := c.FormValue("path")
	if objectKey == "" {
		return middleware.BadRequest("Target path is required")
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	url, err := h.mediaService.UploadGalleryObject(c.Context(), profileID, objectKey, fileReader, file.Size, contentTypeOf(file.Header.Get("Content-Type")))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		if errors.Is(err, storage.ErrObjectExists) {
			return middleware.Conflict("An object already exists at this path")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"url":     url,
	})
}

func (h *MediaHandler) AppendGallery(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("profileId"))
	if err != nil {
		return middleware.BadRequest("Invalid profile ID")
	}

	var input domain.AppendGalleryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if len(input.URLs) == 0 {
		return middleware.BadRequest("At least one URL is required")
	}

	urls, err := h.mediaService.AppendGalleryURLs(c.Context(), profileID, input.URLs)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"media_urls": urls,
	})
}

func (h *MediaHandler) RemoveMedia(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("profileId"))
	if err != nil {
		return middleware.BadRequest("Invalid profile ID")
	}

	var input domain.RemoveMediaInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.URL == "" {
		return middleware.BadRequest("URL is required")
	}

	result, err := h.mediaService.Remove(c.Context(), profileID, input.URL)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"media_urls":      result.MediaURLs,
		"storage_deleted": result.StorageDeleted,
	})
}

func contentTypeOf(header string) string {
	if header == "" {
		return "application/octet-stream"
	}
	return header
}
