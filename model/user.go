package model

import (
	"time"

	"github.com/oleksandr-romashko/contacts-api/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64            `db:"id" json:"id"`
	Username     string            `db:"username" json:"username"`
	Email        string            `db:"email" json:"email"`
	PasswordHash string            `db:"password_hash" json:"-"`
	Avatar       string            `db:"avatar" json:"avatar,omitempty"`
	Role         constant.UserRole `db:"role" json:"role"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time        `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID       uint64
	Username string
	Email    string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterResponse carries the newly created user plus the owner's contact
// total (zero right after registration, kept for shape parity with the
// profile response).
type RegisterResponse struct {
	ID            uint64 `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Avatar        string `json:"avatar,omitempty"`
	ContactsCount int64  `json:"contacts_count"`
}

// LoginRequest for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileResponse describes the current user. Role and timestamps are only
// populated for privileged roles.
type ProfileResponse struct {
	ID            uint64            `json:"id"`
	Username      string            `json:"username"`
	Email         string            `json:"email"`
	Avatar        string            `json:"avatar,omitempty"`
	ContactsCount int64             `json:"contacts_count"`
	Role          constant.UserRole `json:"role,omitempty"`
	CreatedAt     *time.Time        `json:"created_at,omitempty"`
	UpdatedAt     *time.Time        `json:"updated_at,omitempty"`
}

// UpdateProfileRequest for partial profile updates. At least one field must
// be set, which the application layer checks.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=150"`
}
