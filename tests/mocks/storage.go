package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string, overwrite bool) (string, error) {
	args := m.Called(ctx, key, reader, size, contentType, overwrite)
	return args.String(0), args.Error(1)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Storage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func (m *Storage) KeyFromURL(rawURL string) (string, error) {
	args := m.Called(rawURL)
	return args.String(0), args.Error(1)
}
