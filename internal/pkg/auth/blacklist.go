package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blacklist key per revoked token: session:blacklist:{token}.
const blacklistKey = "session:blacklist:%s"

// TokenBlacklist tracks session tokens revoked by logout until they
// would have expired anyway.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RedisBlacklist stores revoked tokens in Redis with a TTL.
type RedisBlacklist struct {
	client *redis.Client
}

// NewRedisBlacklist creates a blacklist backed by the given Redis address.
func NewRedisBlacklist(addr string) *RedisBlacklist {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisBlacklist{client: client}
}

// Revoke marks the token as unusable for ttl.
func (b *RedisBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return b.client.Set(ctx, fmt.Sprintf(blacklistKey, token), "1", ttl).Err()
}

// IsRevoked reports whether the token was blacklisted.
func (b *RedisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, fmt.Sprintf(blacklistKey, token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close releases the underlying Redis connection.
func (b *RedisBlacklist) Close() error {
	return b.client.Close()
}

// NoopBlacklist is used when no Redis address is configured; logout then
// relies on token expiry alone.
type NoopBlacklist struct{}

func (NoopBlacklist) Revoke(context.Context, string, time.Duration) error { return nil }

func (NoopBlacklist) IsRevoked(context.Context, string) (bool, error) { return false, nil }
