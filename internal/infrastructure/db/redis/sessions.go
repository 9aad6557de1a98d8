package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore is a denylist of revoked session tokens backed by Redis.
// Key format: session:revoked:<token_id>
// Entries expire when the token itself would have, so the set stays bounded.
type SessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

// Revoke denies tokenID until the given expiry. Already-expired tokens are
// skipped since the JWT check rejects them anyway.
func (s *SessionStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID has been revoked.
func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) key(tokenID string) string {
	return "session:revoked:" + tokenID
}
