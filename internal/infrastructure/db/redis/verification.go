package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pendingTTL = 24 * time.Hour

// VerificationStore tracks which emails currently have a verification
// pending. Key format: verify:<email>. The flag is transient UX state; the
// authoritative verified bit lives on the account record.
type VerificationStore struct {
	client *redis.Client
}

// NewVerificationStore creates a VerificationStore wrapping the given Redis client.
func NewVerificationStore(client *redis.Client) *VerificationStore {
	return &VerificationStore{client: client}
}

// MarkPending records that a verification was issued (expires after pendingTTL).
func (v *VerificationStore) MarkPending(ctx context.Context, email string) error {
	return v.client.Set(ctx, v.key(email), "1", pendingTTL).Err()
}

// ClearPending removes the flag once the account is verified.
func (v *VerificationStore) ClearPending(ctx context.Context, email string) error {
	return v.client.Del(ctx, v.key(email)).Err()
}

// Pending reports whether a verification is outstanding for the email.
func (v *VerificationStore) Pending(ctx context.Context, email string) (bool, error) {
	n, err := v.client.Exists(ctx, v.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("verification check: %w", err)
	}
	return n > 0, nil
}

func (v *VerificationStore) key(email string) string {
	return fmt.Sprintf("verify:%s", email)
}
