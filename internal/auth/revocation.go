package auth

import (
	"context"
	"errors"
	"time"
)

// RevocationStore remembers logged-out session ids until they would have expired.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ErrRevoked is returned for a session that was explicitly logged out.
var ErrRevoked = errors.New("session revoked")
