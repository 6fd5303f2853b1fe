package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// DefaultCookieName is the cookie carrying the admin session token.
const DefaultCookieName = "admin-token"

// SessionCookies sets, reads and clears the admin session cookie.
type SessionCookies struct {
	name   string
	secure bool
	now    func() time.Time
}

// NewSessionCookies builds a cookie store. secure should be true in production.
func NewSessionCookies(name string, secure bool) *SessionCookies {
	if name == "" {
		name = DefaultCookieName
	}
	return &SessionCookies{name: name, secure: secure, now: time.Now}
}

// Issue wraps a token in a cookie that lives until expiresAt.
func (s *SessionCookies) Issue(token string, expiresAt time.Time) *fiber.Cookie {
	maxAge := int(expiresAt.Sub(s.now()).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	return &fiber.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expiresAt,
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}

// Clear returns an empty cookie with zero lifetime so the client drops it.
func (s *SessionCookies) Clear() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}

// Read returns the session token sent by the client, or "".
func (s *SessionCookies) Read(c *fiber.Ctx) string {
	return c.Cookies(s.name)
}
