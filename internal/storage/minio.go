package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"

	"lokalpro/internal/config"
)

// MinioStorage implements Storage on a MinIO (or any S3-compatible) backend.
// The client is constructed at startup and injected; this type carries no
// global state.
type MinioStorage struct {
	client         *minio.Client
	bucket         string
	publicEndpoint string
	publicUseSSL   bool
}

func NewMinioStorage(client *minio.Client, cfg *config.Config) *MinioStorage {
	return &MinioStorage{
		client:         client,
		bucket:         cfg.MinIOBucket,
		publicEndpoint: cfg.MinIOPublicEndpoint,
		publicUseSSL:   cfg.MinIOPublicUseSSL,
	}
}

func (s *MinioStorage) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string, overwrite bool) (string, error) {
	if !overwrite {
		_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return "", ErrObjectExists
		}
		if minio.ToErrorResponse(err).Code != "NoSuchKey" {
			return "", fmt.Errorf("stat object %q: %w", key, err)
		}
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}

	return s.PublicURL(key), nil
}

func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// PublicURL escapes each path segment separately so the key's slashes stay
// literal in the URL and KeyFromURL can recover the key.
func (s *MinioStorage) PublicURL(key string) string {
	scheme := "http"
	if s.publicUseSSL {
		scheme = "https"
	}
	parts := strings.Split(key, "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.publicEndpoint, s.bucket, strings.Join(parts, "/"))
}

func (s *MinioStorage) KeyFromURL(rawURL string) (string, error) {
	marker := "/" + s.bucket + "/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return "", fmt.Errorf("url %q does not address bucket %q", rawURL, s.bucket)
	}

	key, err := url.PathUnescape(rawURL[idx+len(marker):])
	if err != nil {
		return "", fmt.Errorf("decode storage key from %q: %w", rawURL, err)
	}
	if key == "" {
		return "", fmt.Errorf("url %q has an empty storage key", rawURL)
	}
	return key, nil
}
