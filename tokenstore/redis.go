package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "panelauth:token"

// Redis persists the token under a single Redis key. A zero TTL keeps the
// token until Clear; a positive TTL bounds how long a remembered session can
// outlive its last Save.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisOption adjusts a [Redis] store during construction.
type RedisOption func(*Redis)

// WithRedisKey overrides the storage key, for running several panel
// identities against one Redis instance.
func WithRedisKey(key string) RedisOption {
	return func(r *Redis) {
		if key != "" {
			r.key = key
		}
	}
}

// WithRedisTTL bounds the persisted token's lifetime. Each Save restarts
// the clock.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// NewRedis creates a Redis-backed store.
func NewRedis(client *redis.Client, opts ...RedisOption) (*Redis, error) {
	if client == nil {
		return nil, fmt.Errorf("tokenstore: nil redis client")
	}
	store := &Redis{client: client, key: defaultRedisKey}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// Load implements [Store].
func (r *Redis) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore: redis get: %w", err)
	}
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

// Save implements [Store].
func (r *Redis) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("tokenstore: redis set: %w", err)
	}
	return nil
}

// Clear implements [Store].
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("tokenstore: redis del: %w", err)
	}
	return nil
}
