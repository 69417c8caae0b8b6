package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                      uuid.UUID  `json:"id" db:"user_id"`
	Email                   string     `json:"email" db:"email"`
	PasswordHash            string     `json:"-" db:"password_hash"`
	FullName                string     `json:"full_name" db:"full_name"`
	City                    *string    `json:"city,omitempty" db:"city"`
	IsActive                bool       `json:"is_active" db:"is_active"`
	IsEmailVerified         bool       `json:"is_email_verified" db:"is_email_verified"`
	EmailVerificationToken  *string    `json:"-" db:"email_verification_token"`
	EmailVerificationSentAt *time.Time `json:"-" db:"email_verification_sent_at"`
	PasswordResetToken      *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpiresAt  *time.Time `json:"-" db:"password_reset_expires_at"`
	CreatedAt               time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt               *time.Time `json:"-" db:"deleted_at"`
}

type CreateUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
}

type UpdateUserInput struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2"`
	City     *string `json:"city,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
