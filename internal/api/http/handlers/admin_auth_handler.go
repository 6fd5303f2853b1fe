package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
)

// AdminAuthHandler exposes admin login, logout and session verification.
type AdminAuthHandler struct {
	sessions AdminSessions
	cookies  *auth.SessionCookies
}

// NewAdminAuthHandler constructs handler.
func NewAdminAuthHandler(sessions AdminSessions, cookies *auth.SessionCookies) *AdminAuthHandler {
	return &AdminAuthHandler{sessions: sessions, cookies: cookies}
}

// Login handles POST /api/admin/auth/login.
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := dto.Bind(c, &req); err != nil {
		return err
	}

	admin, token, exp, err := h.sessions.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(h.cookies.Issue(token, exp))
	return c.JSON(fiber.Map{
		"success": true,
		"user":    dto.NewAdminUserResponse(admin),
	})
}

// Logout handles POST /api/admin/auth/logout. It succeeds with or without a
// session cookie.
func (h *AdminAuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout(c.UserContext(), h.cookies.Read(c))
	c.Cookie(h.cookies.Clear())
	return c.JSON(fiber.Map{"success": true})
}

// Verify handles GET /api/admin/auth/verify.
func (h *AdminAuthHandler) Verify(c *fiber.Ctx) error {
	token := h.cookies.Read(c)
	if token == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}

	identity, err := h.sessions.Session(c.UserContext(), token)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user":          dto.NewIdentityResponse(identity),
	})
}
