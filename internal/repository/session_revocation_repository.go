package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedSessionPrefix = "revoked-session:"

// SessionRevocationRepository keeps logged-out token ids in Redis until they expire.
type SessionRevocationRepository struct {
	client *redis.Client
}

// NewSessionRevocationRepository constructs repository.
func NewSessionRevocationRepository(client *redis.Client) *SessionRevocationRepository {
	return &SessionRevocationRepository{client: client}
}

// Revoke records tokenID for ttl. Non-positive ttls are ignored since the token is already expired.
func (r *SessionRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedSessionPrefix+tokenID, 1, ttl).Err()
}

// IsRevoked reports whether tokenID was logged out.
func (r *SessionRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedSessionPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
