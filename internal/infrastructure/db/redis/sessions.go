package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore is the bearer-session allowlist backed by Redis.
// Key format: session:<session_id>, value: the principal's email.
// Keys expire with the token TTL; logout deletes the key so the token stops
// resolving before expiry.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create records a live session.
func (s *SessionStore) Create(ctx context.Context, sessionID, email string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(sessionID), email, ttl).Err()
}

// Delete removes a session.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// Active reports whether the session is still live.
func (s *SessionStore) Active(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) key(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
