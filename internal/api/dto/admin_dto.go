package dto

import (
	"strings"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
)

// AdminLoginRequest payload.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *AdminLoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return validate.Struct(r)
}

// AdminUserResponse is the admin identity exposed to the dashboard.
type AdminUserResponse struct {
	ID    string           `json:"id"`
	Email string           `json:"email"`
	Role  domain.AdminRole `json:"role"`
}

// NewAdminUserResponse converts a stored admin.
func NewAdminUserResponse(admin *domain.Admin) AdminUserResponse {
	return AdminUserResponse{ID: admin.ID, Email: admin.Email, Role: admin.Role}
}

// NewIdentityResponse converts a verified session identity.
func NewIdentityResponse(identity *auth.Identity) AdminUserResponse {
	return AdminUserResponse{ID: identity.ID, Email: identity.Email, Role: identity.Role}
}
