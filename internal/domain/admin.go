package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminGrant authorizes one user to use the moderation panel. Grants are
// queried by the request path and only ever written by operator tooling.
type AdminGrant struct {
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	GrantedBy *uuid.UUID `json:"granted_by,omitempty" db:"granted_by"`
	Note      *string    `json:"note,omitempty" db:"note"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
