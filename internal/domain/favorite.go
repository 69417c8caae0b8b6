package domain

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
