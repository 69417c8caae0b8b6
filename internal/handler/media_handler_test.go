package handler_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lokalpro/internal/domain"
	"lokalpro/internal/handler"
	"lokalpro/internal/middleware"
	"lokalpro/internal/storage"
	"lokalpro/tests/mocks"
)

func newMediaTestApp(svc *mocks.MediaService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	h := handler.NewMediaHandler(svc)

	app.Post("/profiles/:profileId/avatar", h.UploadAvatar)
	app.Post("/profiles/:profileId/gallery", h.UploadGallery)
	app.Post("/profiles/:profileId/gallery/append", h.AppendGallery)
	app.Post("/profiles/:profileId/media/remove", h.RemoveMedia)

	return app
}

func multipartBody(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if withFile {
		fw, err := w.CreateFormFile("file", "upload.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("file-bytes")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func readBody(t *testing.T, r io.Reader) string {
	t.Helper()
	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}

func TestMediaHandler_UploadGallery(t *testing.T) {
	profileID := uuid.New()

	t.Run("Path Collision Returns Conflict", func(t *testing.T) {
		svc := new(mocks.MediaService)
		svc.On("UploadGalleryObject", mock.Anything, profileID, "p1/workshop.jpg", mock.Anything, mock.Anything, mock.Anything).
			Return("", storage.ErrObjectExists).Once()
		app := newMediaTestApp(svc)

		body, contentType := multipartBody(t, map[string]string{"path": "p1/workshop.jpg"}, true)
		req := httptest.NewRequest("POST", "/profiles/"+profileID.String()+"/gallery", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Contains(t, readBody(t, resp.Body), `"success":false`)
	})

	t.Run("Missing Path Returns Bad Request", func(t *testing.T) {
		svc := new(mocks.MediaService)
		app := newMediaTestApp(svc)

		body, contentType := multipartBody(t, nil, true)
		req := httptest.NewRequest("POST", "/profiles/"+profileID.String()+"/gallery", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "UploadGalleryObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing File Returns Bad Request", func(t *testing.T) {
		svc := new(mocks.MediaService)
		app := newMediaTestApp(svc)

		body, contentType := multipartBody(t, map[string]string{"path": "p1/workshop.jpg"}, false)
		req := httptest.NewRequest("POST", "/profiles/"+profileID.String()+"/gallery", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "UploadGalleryObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		svc := new(mocks.MediaService)
		svc.On("UploadGalleryObject", mock.Anything, profileID, "p1/workshop.jpg", mock.Anything, mock.Anything, mock.Anything).
			Return("https://media.lokalpro.id/lokalpro-media/p1/workshop.jpg", nil).Once()
		app := newMediaTestApp(svc)

		body, contentType := multipartBody(t, map[string]string{"path": "p1/workshop.jpg"}, true)
		req := httptest.NewRequest("POST", "/profiles/"+profileID.String()+"/gallery", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp.Body), `"success":true`)
	})
}

func TestMediaHandler_UploadAvatar(t *testing.T) {
	profileID := uuid.New()

	t.Run("Missing File Returns Bad Request", func(t *testing.T) {
		svc := new(mocks.MediaService)
		app := newMediaTestApp(svc)

		body, contentType := multipartBody(t, nil, false)
		req := httptest.NewRequest("POST", "/profiles/"+profileID.String()+"/avatar", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "UploadAvatar", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Profile Returns Not Found", func(t *testing.T) {
		svc := new(mocks.MediaService)
		svc.On("UploadAvatar", mock.Anything, profileID, mock.Anything).
			Return("", domain.ErrProfileNotFound).Once()
		app := newMediaTestApp(svc)

		body, contentType := multipartBody(t, nil, true)
		req := httptest.NewRequest("POST", "/profiles/"+profileID.String()+"/avatar", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Invalid Profile ID Returns Bad Request", func(t *testing.T) {
		svc := new(mocks.MediaService)
		app := newMediaTestApp(svc)

		body, contentType := multipartBody(t, nil, true)
		req := httptest.NewRequest("POST", "/profiles/not-a-uuid/avatar", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "UploadAvatar", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMediaHandler_AppendGallery(t *testing.T) {
	profileID := uuid.New()

	t.Run("Missing URLs Returns Bad Request", func(t *testing.T) {
		svc := new(mocks.MediaService)
		app := newMediaTestApp(svc)

		req := httptest.NewRequest("POST", "/profiles/"+profileID.String()+"/gallery/append", strings.NewReader(`{"urls":[]}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "AppendGalleryURLs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success Returns Updated List", func(t *testing.T) {
		svc := new(mocks.MediaService)
		svc.On("AppendGalleryURLs", mock.Anything, profileID, []string{"https://host/a.jpg"}).
			Return([]string{"https://host/a.jpg"}, nil).Once()
		app := newMediaTestApp(svc)

		req := httptest.NewRequest("POST", "/profiles/"+profileID.String()+"/gallery/append", strings.NewReader(`{"urls":["https://host/a.jpg"]}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp.Body), `"media_urls"`)
	})
}

func TestMediaHandler_RemoveMedia(t *testing.T) {
	profileID := uuid.New()

	t.Run("Missing URL Returns Bad Request", func(t *testing.T) {
		svc := new(mocks.MediaService)
		app := newMediaTestApp(svc)

		req := httptest.NewRequest("POST", "/profiles/"+profileID.String()+"/media/remove", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reports Storage Outcome", func(t *testing.T) {
		svc := new(mocks.MediaService)
		svc.On("Remove", mock.Anything, profileID, "https://host/a.jpg").
			Return(&domain.RemoveMediaResult{MediaURLs: []string{}, StorageDeleted: false}, nil).Once()
		app := newMediaTestApp(svc)

		req := httptest.NewRequest("POST", "/profiles/"+profileID.String()+"/media/remove", strings.NewReader(`{"url":"https://host/a.jpg"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp.Body), `"storage_deleted":false`)
	})
}
