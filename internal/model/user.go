package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
	"github.com/Shivanand-hulikatti/event-management/internal/auth"
)

// User is an authenticated account that creates events or registers for
// them, depending on its role.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         auth.Role `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser validates the account data and returns an active User with a
// generated id and creation timestamp. The password hash is opaque here;
// hashing happens in the auth service.
func NewUser(email, passwordHash string, role auth.Role) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperror.Validation("user", "email", "email cannot be empty")
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, apperror.Validation("user", "password_hash", "password hash cannot be empty")
	}
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
