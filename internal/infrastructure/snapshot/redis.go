package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBlob stores the snapshot as one string value under a fixed key.
type RedisBlob struct {
	client *redis.Client
	key    string
}

func NewRedisBlob(client *redis.Client, key string) *RedisBlob {
	return &RedisBlob{client: client, key: key}
}

func (b *RedisBlob) Load(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}
	return data, nil
}

func (b *RedisBlob) Save(ctx context.Context, data []byte) error {
	if err := b.client.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}
