package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deduper prevents double-handling of events via Redis SetNX.
type Deduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDeduper(rdb *redis.Client, ttl time.Duration) *Deduper {
	return &Deduper{
		rdb: rdb,
		ttl: ttl,
	}
}

// NewDeduperWithLogger creates a deduper with logger support.
func NewDeduperWithLogger(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Deduper {
	return &Deduper{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// AcquireOnce tries to acquire the dedup lock for a handler + event id.
// Returns true on first sight, false on a duplicate. When Redis is down
// processing is allowed rather than blocked.
func (d *Deduper) AcquireOnce(ctx context.Context, handler, eventID string) bool {
	key := fmt.Sprintf("dedup:%s:%s", handler, eventID)

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("Redis dedup check failed, allowing processing",
				zap.String("handler", handler),
				zap.String("event_id", eventID),
				zap.Error(err),
			)
		}
		return true
	}

	if !ok && d.logger != nil {
		d.logger.Info("Skipped duplicated event",
			zap.String("handler", handler),
			zap.String("event_id", eventID),
			zap.String("dedup_key", key),
		)
	}

	return ok
}

// Release drops the dedup lock so a failed handling attempt can be retried.
func (d *Deduper) Release(ctx context.Context, handler, eventID string) {
	key := fmt.Sprintf("dedup:%s:%s", handler, eventID)
	if err := d.rdb.Del(ctx, key).Err(); err != nil && d.logger != nil {
		d.logger.Warn("Failed to release dedup key",
			zap.String("dedup_key", key),
			zap.Error(err),
		)
	}
}

