package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured is returned by Connect when no URL is given.
var ErrNotConfigured = errors.New("redis url not configured")

// Connect establishes a connection to Redis and pings it within timeout.
func Connect(ctx context.Context, redisURL string, timeout time.Duration) (*redis.Client, error) {
	if redisURL == "" {
		return nil, ErrNotConfigured
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
