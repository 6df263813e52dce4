package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// New connects and pings so a bad address fails at startup, not first use.
func New(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
