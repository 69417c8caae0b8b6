package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"lokalpro/internal/domain"
	"lokalpro/internal/repository"
	"lokalpro/internal/storage"
)

var ErrInvalidImage = errors.New("file is not a decodable image")

// Avatars are normalized to JPEG and capped to this edge length.
const (
	avatarMaxSize     = 1024
	avatarJPEGQuality = 85
)

// Service implements the admin media flow: avatar ingest (replace), gallery
// object upload, gallery URL append, and media removal. The profile record
// and the object store are separate systems with no transactional link;
// consistency between them is best-effort by sequencing.
type Service interface {
	UploadAvatar(ctx context.Context, profileID uuid.UUID, reader io.Reader) (string, error)
	UploadGalleryObject(ctx context.Context, profileID uuid.UUID, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	AppendGalleryURLs(ctx context.Context, profileID uuid.UUID, urls []string) ([]string, error)
	Remove(ctx context.Context, profileID uuid.UUID, mediaURL string) (*domain.RemoveMediaResult, error)
}

type service struct {
	profileRepo repository.ProfileRepository
	store       storage.Storage
	redis       *redis.Client
}

func NewService(profileRepo repository.ProfileRepository, store storage.Storage, redis *redis.Client) Service {
	return &service{
		profileRepo: profileRepo,
		store:       store,
		redis:       redis,
	}
}

// UploadAvatar replaces the profile's avatar. The old object is deleted
// best-effort before the new upload; a failed delete is logged and never
// blocks. A storage-write failure aborts before any record mutation. A
// record-update failure after a successful upload leaves the new object
// orphaned; no compensating delete is attempted.
func (s *service) UploadAvatar(ctx context.Context, profileID uuid.UUID, reader io.Reader) (string, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", domain.ErrProfileNotFound
	}

	if profile.AvatarURL != nil {
		s.deleteObjectByURL(ctx, *profile.AvatarURL)
	}

	normalized, err := normalizeAvatar(reader)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/avatar-%d.jpg", profileID, time.Now().UnixMilli())
	publicURL, err := s.store.Put(ctx, key, normalized, int64(normalized.Len()), "image/jpeg", true)
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	if err := s.profileRepo.UpdateAvatarURL(ctx, profileID, &publicURL); err != nil {
		log.Printf("Warning: avatar uploaded to %s but record update failed, object orphaned: %v", key, err)
		return "", fmt.Errorf("update avatar record: %w", err)
	}

	s.invalidateProfile(ctx, profile.Slug)
	return publicURL, nil
}

// UploadGalleryObject stores one file at the exact caller-supplied key.
// It fails with storage.ErrObjectExists when the key is taken and never
// touches the profile record; appending the URL is a separate call.
func (s *service) UploadGalleryObject(ctx context.Context, profileID uuid.UUID, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", domain.ErrProfileNotFound
	}

	publicURL, err := s.store.Put(ctx, objectKey, reader, size, contentType, false)
	if err != nil {
		if errors.Is(err, storage.ErrObjectExists) {
			return "", err
		}
		return "", fmt.Errorf("upload gallery object: %w", err)
	}

	return publicURL, nil
}

// AppendGalleryURLs concatenates urls onto the profile's gallery in order,
// without de-duplication. Read-modify-write: concurrent appends against the
// same profile can race and one can lose; accepted at current volume.
func (s *service) AppendGalleryURLs(ctx context.Context, profileID uuid.UUID, urls []string) ([]string, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	updated := append([]string(profile.MediaURLs), urls...)
	if err := s.profileRepo.UpdateMediaURLs(ctx, profileID, updated); err != nil {
		return nil, err
	}

	s.invalidateProfile(ctx, profile.Slug)
	return updated, nil
}

// Remove filters every exact match of mediaURL out of the gallery and writes
// the list back; that update is authoritative. Deleting the backing object
// is best-effort: failures are logged, never surfaced, and reported through
// StorageDeleted so callers can tell a clean removal from an orphan.
func (s *service) Remove(ctx context.Context, profileID uuid.UUID, mediaURL string) (*domain.RemoveMediaResult, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	filtered := make([]string, 0, len(profile.MediaURLs))
	for _, u := range profile.MediaURLs {
		if u != mediaURL {
			filtered = append(filtered, u)
		}
	}

	if err := s.profileRepo.UpdateMediaURLs(ctx, profileID, filtered); err != nil {
		return nil, err
	}

	storageDeleted := s.deleteObjectByURL(ctx, mediaURL)

	s.invalidateProfile(ctx, profile.Slug)
	return &domain.RemoveMediaResult{
		MediaURLs:      filtered,
		StorageDeleted: storageDeleted,
	}, nil
}

// deleteObjectByURL maps a public URL back to its storage key and deletes
// the object. All failures are swallowed and logged; returns whether the
// delete went through.
func (s *service) deleteObjectByURL(ctx context.Context, mediaURL string) bool {
	key, err := s.store.KeyFromURL(mediaURL)
	if err != nil {
		log.Printf("Warning: cannot resolve storage key for %s: %v", mediaURL, err)
		return false
	}
	if err := s.store.Delete(ctx, key); err != nil {
		log.Printf("Warning: failed to delete storage object %s: %v", key, err)
		return false
	}
	return true
}

func (s *service) invalidateProfile(ctx context.Context, slug string) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, "directory:profile:"+slug).Err()
	}
}

// normalizeAvatar re-encodes an uploaded image as JPEG, downscaling it to
// fit avatarMaxSize when larger. The target format is fixed regardless of
// what the client sent.
func normalizeAvatar(reader io.Reader) (*bytes.Buffer, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > avatarMaxSize || bounds.Dy() > avatarMaxSize {
		img = imaging.Fit(img, avatarMaxSize, avatarMaxSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(avatarJPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode avatar: %w", err)
	}
	return &buf, nil
}
