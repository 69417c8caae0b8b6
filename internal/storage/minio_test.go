package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lokalpro/internal/config"
	"lokalpro/internal/storage"
)

func testStorage() *storage.MinioStorage {
	return storage.NewMinioStorage(nil, &config.Config{
		MinIOBucket:         "lokalpro-media",
		MinIOPublicEndpoint: "media.lokalpro.id",
		MinIOPublicUseSSL:   true,
	})
}

func TestMinioStorage_PublicURL(t *testing.T) {
	s := testStorage()

	t.Run("Plain Key", func(t *testing.T) {
		url := s.PublicURL("abc123/avatar-1700000000000.jpg")

		assert.Equal(t, "https://media.lokalpro.id/lokalpro-media/abc123/avatar-1700000000000.jpg", url)
	})

	t.Run("Key With Spaces", func(t *testing.T) {
		url := s.PublicURL("abc123/sertifikat k3.pdf")

		assert.Equal(t, "https://media.lokalpro.id/lokalpro-media/abc123/sertifikat%20k3.pdf", url)
	})

	t.Run("Slashes Stay Literal", func(t *testing.T) {
		url := s.PublicURL("abc123/gallery/foto.jpg")

		assert.Contains(t, url, "/lokalpro-media/abc123/gallery/foto.jpg")
	})
}

func TestMinioStorage_KeyFromURL(t *testing.T) {
	s := testStorage()

	t.Run("Round Trip", func(t *testing.T) {
		for _, key := range []string{
			"abc123/avatar-1700000000000.jpg",
			"abc123/sertifikat k3.pdf",
			"abc123/gallery/foto depan.jpg",
		} {
			got, err := s.KeyFromURL(s.PublicURL(key))

			assert.NoError(t, err)
			assert.Equal(t, key, got)
		}
	})

	t.Run("Foreign Bucket", func(t *testing.T) {
		_, err := s.KeyFromURL("https://media.lokalpro.id/other-bucket/abc123/foto.jpg")

		assert.Error(t, err)
	})

	t.Run("Empty Key", func(t *testing.T) {
		_, err := s.KeyFromURL("https://media.lokalpro.id/lokalpro-media/")

		assert.Error(t, err)
	})
}
