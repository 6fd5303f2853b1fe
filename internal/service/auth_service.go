package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// AuthService coordinates admin login, session verification and logout.
type AuthService struct {
	admins     repository.AdminRepository
	tokens     auth.Tokens
	revocation auth.RevocationStore
	logger     *zap.Logger
	now        func() time.Time
	compare    func(hashed, plain string) error
	dummy      func(plain string) error
}

// AuthDependencies encapsulates requirements for auth service. Revocation
// may be nil, in which case logout only clears the cookie.
type AuthDependencies struct {
	AdminRepo  repository.AdminRepository
	Tokens     auth.Tokens
	Revocation auth.RevocationStore
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:     deps.AdminRepo,
		tokens:     deps.Tokens,
		revocation: deps.Revocation,
		logger:     loggerOrNop(deps.Logger),
		now:        time.Now,
		compare:    auth.ComparePassword,
		dummy:      auth.CompareDummyPassword,
	}
}

// Login authenticates an admin and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Unknown emails pay the same hashing cost as known ones.
			_ = s.dummy(password)
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.StoreError("admin", err)
	}
	if err := s.compare(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if !admin.Active {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("account disabled")
	}

	token, exp, err := s.tokens.Issue(auth.Identity{ID: admin.ID, Email: admin.Email, Role: admin.Role})
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return admin, token, exp, nil
}

// Session verifies a session token and returns the admin it asserts.
func (s *AuthService) Session(ctx context.Context, token string) (*auth.Identity, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	if s.revocation != nil {
		revoked, err := s.revocation.IsRevoked(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("session revocation lookup failed", zap.String("admin_id", claims.Subject), zap.Error(err))
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, auth.ErrRevoked
		}
	}

	identity := claims.Identity()
	return &identity, nil
}

// EnsureAdmin creates a super admin with the given credentials unless an
// admin with that email already exists. It reports whether one was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string, cost int) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, apperrors.NewValidationError("email and password required", nil)
	}

	_, err := s.admins.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, apperrors.StoreError("admin", err)
	}

	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return false, apperrors.NewInternalError(err)
	}
	admin := &domain.Admin{Email: email, PasswordHash: hash, Role: domain.AdminRoleSuperAdmin, Active: true}
	if err := s.admins.Create(ctx, admin); err != nil {
		return false, apperrors.StoreError("admin", err)
	}
	s.logger.Info("bootstrap admin created", zap.String("admin_id", admin.ID), zap.String("email", email))
	return true, nil
}

// Logout revokes the presented token until its natural expiry. Tokens that
// no longer verify need no revocation. Store failures are logged only, so
// the caller can always clear the cookie.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" || s.revocation == nil {
		return
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.revocation.Revoke(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("session revocation failed", zap.String("admin_id", claims.Subject), zap.Error(err))
		return
	}
	s.logger.Info("admin logged out", zap.String("admin_id", claims.Subject))
}
