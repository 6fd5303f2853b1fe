package domain

import "time"

// AdminRole enumerates back-office privilege levels.
type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super_admin"
)

// Admin is a back-office operator allowed to manage the store.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	Role         AdminRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
