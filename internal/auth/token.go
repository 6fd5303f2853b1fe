package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/storefront-service/internal/domain"
)

var (
	ErrMalformed        = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
)

// Identity is the admin asserted by a session token.
type Identity struct {
	ID    string           `json:"id"`
	Email string           `json:"email"`
	Role  domain.AdminRole `json:"role"`
}

// Tokens issues and verifies session tokens.
type Tokens interface {
	Issue(identity Identity) (string, time.Time, error)
	Verify(token string) (*Claims, error)
}

// Claims describes JWT payload.
type Claims struct {
	Email string           `json:"email"`
	Role  domain.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// Identity returns the admin carried by the claims.
func (c *Claims) Identity() Identity {
	return Identity{ID: c.Subject, Email: c.Email, Role: c.Role}
}

// TokenManager handles issuing and validating HS256 JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source used for issuing and validation.
func (tm *TokenManager) WithClock(now func() time.Time) *TokenManager {
	tm.now = now
	return tm
}

// Issue builds and signs a token for the admin.
func (tm *TokenManager) Issue(identity Identity) (string, time.Time, error) {
	now := tm.now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Email: identity.Email,
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates the token and returns its claims.
//
// An elapsed expiry is reported as ErrExpired even when the signature does
// not match.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)

	switch {
	case err == nil:
		if !parsed.Valid {
			return nil, ErrInvalidSignature
		}
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		if tm.expired(claims) {
			return nil, ErrExpired
		}
		return nil, ErrInvalidSignature
	default:
		return nil, ErrMalformed
	}
}

func (tm *TokenManager) expired(claims *Claims) bool {
	if claims.ExpiresAt == nil {
		return false
	}
	return !tm.now().Before(claims.ExpiresAt.Time)
}
