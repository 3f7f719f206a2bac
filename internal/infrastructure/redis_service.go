package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService caches issued session tokens. It degrades to a no-op when
// no client is configured so the service can run without Redis.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(addr, password string, db int) *RedisService {
	if addr == "" {
		return &RedisService{client: nil}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		fmt.Printf("Warning: Redis connection failed: %v\n", err)
		fmt.Printf("Redis will be disabled. Token caching is skipped.\n")
		return &RedisService{client: nil}
	}

	return &RedisService{client: client}
}

func (r *RedisService) SetToken(ctx context.Context, token, username string, ttl time.Duration) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Set(ctx, "token:"+token, username, ttl).Err()
}

func (r *RedisService) GetToken(ctx context.Context, token string) (string, error) {
	if r.client == nil {
		return "", redis.Nil // Redis disabled, behave as if the key is absent
	}
	return r.client.Get(ctx, "token:"+token).Result()
}

func (r *RedisService) DeleteToken(ctx context.Context, token string) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Del(ctx, "token:"+token).Err()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Close()
}
