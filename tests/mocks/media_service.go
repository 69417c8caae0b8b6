package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lokalpro/internal/domain"
)

type MediaService struct {
	mock.Mock
}

func (m *MediaService) UploadAvatar(ctx context.Context, profileID uuid.UUID, reader io.Reader) (string, error) {
	args := m.Called(ctx, profileID, reader)
	return args.String(0), args.Error(1)
}

func (m *MediaService) UploadGalleryObject(ctx context.Context, profileID uuid.UUID, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, profileID, objectKey, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MediaService) AppendGalleryURLs(ctx context.Context, profileID uuid.UUID, urls []string) ([]string, error) {
	args := m.Called(ctx, profileID, urls)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MediaService) Remove(ctx context.Context, profileID uuid.UUID, mediaURL string) (*domain.RemoveMediaResult, error) {
	args := m.Called(ctx, profileID, mediaURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RemoveMediaResult), args.Error(1)
}
