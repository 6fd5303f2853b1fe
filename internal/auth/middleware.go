package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// SessionVerifier resolves a session token into the admin it asserts.
type SessionVerifier interface {
	Session(ctx context.Context, token string) (*Identity, error)
}

// AuthMiddleware validates the admin session cookie and loads the principal.
type AuthMiddleware struct {
	sessions SessionVerifier
	cookies  *SessionCookies
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(sessions SessionVerifier, cookies *SessionCookies) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cookies: cookies}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := m.cookies.Read(c)
	if token == "" {
		return apperrors.NewUnauthorized("missing session")
	}

	identity, err := m.sessions.Session(c.UserContext(), token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid session")
	}

	c.Locals(principalKey, identity)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated admin.
func PrincipalFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Identity)
	return principal, ok
}
