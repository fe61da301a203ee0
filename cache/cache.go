//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=../mocks/mock_audio_cache.go -package=mocks

// Package cache keeps synthesized audio in Redis so repeated replies
// do not hit the synthesis service again.
package cache

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type AudioCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, audio []byte) error
}

// RedisAudioCache stores audio blobs with a fixed time to live.
type RedisAudioCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisAudioCache connects and pings so a wrong address fails at boot.
func NewRedisAudioCache(ctx context.Context, opts RedisOptions) (*RedisAudioCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}
	return &RedisAudioCache{client: client, ttl: opts.TTL}, nil
}

func (c *RedisAudioCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	audio, err := c.client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return audio, true, nil
}

func (c *RedisAudioCache) Set(ctx context.Context, key string, audio []byte) error {
	return c.client.Set(ctx, key, audio, c.ttl).Err()
}

func (c *RedisAudioCache) Close() error {
	return c.client.Close()
}
