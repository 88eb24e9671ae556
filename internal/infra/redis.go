package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates and validates a go-redis client connection. An empty URL
// disables Redis and returns a nil client.
func NewRedis(redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}
