package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RetryCounter is a TTL'd Redis counter. The scoping flow uses it to cap
// clarifying-question rounds per session.
type RetryCounter struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRetryCounter(rdb *redis.Client, ttl time.Duration) *RetryCounter {
	return &RetryCounter{rdb: rdb, ttl: ttl}
}

// IncrementAndGet increments the count for a key and returns the new count.
func (r *RetryCounter) IncrementAndGet(ctx context.Context, key string) (int64, error) {
	count, err := r.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	// Expiration starts on first increment.
	if count == 1 {
		r.rdb.Expire(ctx, key, r.ttl)
	}

	return count, nil
}

// Reset clears the count.
func (r *RetryCounter) Reset(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}

// FormatQuestionRoundKey keys the clarifying-question round counter for
// one scoping session.
func FormatQuestionRoundKey(sessionID string) string {
	return fmt.Sprintf("scope:questions:%s", sessionID)
}
