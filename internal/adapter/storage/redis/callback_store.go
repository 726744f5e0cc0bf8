package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CallbackStore implements ports.CallbackStore using Redis SET NX.
type CallbackStore struct {
	client *goredis.Client
	prefix string
}

// NewCallbackStore creates a Redis-backed callback store.
func NewCallbackStore(client *goredis.Client) *CallbackStore {
	return &CallbackStore{
		client: client,
		prefix: "gear:callback:",
	}
}

// MarkSeen atomically records key. Returns true if the key is new, false if
// a callback with the same key was recorded within ttl.
func (s *CallbackStore) MarkSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.redisKey(key), time.Now().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis callback mark: %w", err)
	}
	return result == "OK", nil
}

// Forget deletes key so the next delivery is treated as new.
func (s *CallbackStore) Forget(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("redis callback forget: %w", err)
	}
	return nil
}

// Keys are hashed so raw signatures never appear in Redis.
func (s *CallbackStore) redisKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return s.prefix + hex.EncodeToString(sum[:])
}
