package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is a tenant. Every other entity belongs to exactly one company.
type Company struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// User is a member of a company.
type User struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
