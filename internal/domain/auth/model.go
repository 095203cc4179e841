package auth

import (
	"context"
	"time"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
)

// Roles known to the system.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User represents a system user.
type User struct {
	ID           id.ID      `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	DisplayName  string     `db:"display_name" json:"displayName,omitempty"`
	Role         string     `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
	Version      int        `db:"version" json:"version"`
}

// NewUser creates a new user.
func NewUser(username, passwordHash, role string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           id.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if u.Username == "" {
		return apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	if u.Role != RoleAdmin && u.Role != RoleSeller {
		return apperror.NewValidation("unknown role").WithDetail("role", u.Role)
	}
	return nil
}

// CanLogin checks if user can login.
func (u *User) CanLogin() error {
	if !u.IsActive {
		return apperror.NewForbidden("account is disabled")
	}
	return nil
}

// RecordSuccessfulLogin stamps the last login time.
func (u *User) RecordSuccessfulLogin() {
	now := time.Now().UTC()
	u.LastLoginAt = &now
}
