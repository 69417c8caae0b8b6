package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile is one professional/business listing in the directory.
// MediaURLs is ordered: insertion order is display order, duplicates are
// allowed by the model.
type Profile struct {
	ID          uuid.UUID      `json:"id" db:"profile_id"`
	Slug        string         `json:"slug" db:"slug"`
	Name        string         `json:"name" db:"name"`
	City        string         `json:"city" db:"city"`
	Categories  pq.StringArray `json:"categories" db:"categories"`
	Description *string        `json:"description,omitempty" db:"description"`
	Phone       *string        `json:"phone,omitempty" db:"phone"`
	Rating      float64        `json:"rating" db:"rating"`
	ReviewCount int            `json:"review_count" db:"review_count"`
	IsVerified  bool           `json:"is_verified" db:"is_verified"`
	AvatarURL   *string        `json:"avatar_url,omitempty" db:"avatar_url"`
	MediaURLs   pq.StringArray `json:"media_urls" db:"media_urls"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time     `json:"-" db:"deleted_at"`
}

// ProfileFilter narrows public directory searches. Zero values mean "any".
type ProfileFilter struct {
	Query    string `json:"query" query:"q"`
	City     string `json:"city" query:"city"`
	Category string `json:"category" query:"category"`
	Verified *bool  `json:"verified,omitempty" query:"verified"`
}

// DirectoryFilters feeds the search page dropdowns.
type DirectoryFilters struct {
	Cities     []string `json:"cities"`
	Categories []string `json:"categories"`
}
