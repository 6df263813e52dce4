package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"scopeworks/pkg/metrics"
	"scopeworks/pkg/mq"
	"scopeworks/pkg/trace"
	"scopeworks/pkg/util"
)

// Dispatcher drains pending outbox events to MQ.
type Dispatcher struct {
	repo       *Repository
	publisher  *mq.Publisher
	deduper    *util.Deduper
	logger     *zap.Logger
	maxRetries int
	interval   time.Duration
	batchSize  int
}

func NewDispatcher(
	repo *Repository,
	publisher *mq.Publisher,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		repo:       repo,
		publisher:  publisher,
		logger:     logger,
		maxRetries: 5,
		interval:   1 * time.Second,
		batchSize:  100,
	}
}

// WithDeduper guards against publishing the same event twice when a send
// succeeds but the status update is lost.
func (d *Dispatcher) WithDeduper(deduper *util.Deduper) *Dispatcher {
	d.deduper = deduper
	return d
}

func (d *Dispatcher) WithMaxRetries(maxRetries int) *Dispatcher {
	d.maxRetries = maxRetries
	return d
}

func (d *Dispatcher) WithInterval(interval time.Duration) *Dispatcher {
	d.interval = interval
	return d
}

func (d *Dispatcher) WithBatchSize(batchSize int) *Dispatcher {
	d.batchSize = batchSize
	return d
}

// Start runs the dispatch loop until the context is cancelled. Run it in
// its own goroutine.
func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.Info("Starting Outbox Dispatcher",
		zap.Int("max_retries", d.maxRetries),
		zap.Duration("interval", d.interval),
		zap.Int("batch_size", d.batchSize),
	)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Outbox Dispatcher stopped")
			return
		case <-ticker.C:
			d.processPendingEvents(ctx)
		}
	}
}

func (d *Dispatcher) processPendingEvents(ctx context.Context) {
	events, err := d.repo.GetPendingEvents(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("Failed to get pending events", zap.Error(err))
		return
	}

	if len(events) == 0 {
		return
	}

	d.logger.Debug("Processing pending events",
		zap.Int("count", len(events)),
	)

	for _, event := range events {
		if d.deduper != nil && !d.deduper.AcquireOnce(ctx, "outbox-dispatch", strconv.FormatInt(event.ID, 10)) {
			metrics.RecordOutboxDispatch(event.RoutingKey, "duplicate")
			if err := d.repo.MarkAsSent(ctx, event.ID); err != nil {
				d.logger.Error("Failed to mark duplicate event as sent",
					zap.Int64("event_id", event.ID),
					zap.Error(err),
				)
			}
			continue
		}

		if err := d.publishEvent(ctx, event); err != nil {
			d.logger.Error("Failed to publish event",
				zap.Int64("event_id", event.ID),
				zap.String("routing_key", event.RoutingKey),
				zap.Error(err),
			)

			// The publish never happened, so the next attempt is not a
			// duplicate.
			if d.deduper != nil {
				d.deduper.Release(ctx, "outbox-dispatch", strconv.FormatInt(event.ID, 10))
			}

			retryable, errType := util.IsRetryableError(err)
			if !retryable {
				// Bad payloads never succeed; park them instead of
				// burning the retry budget.
				metrics.RecordOutboxDispatch(event.RoutingKey, "dead")
				if err := d.repo.MarkAsDead(ctx, event.ID); err != nil {
					d.logger.Error("Failed to mark event as dead",
						zap.Int64("event_id", event.ID),
						zap.String("error_type", errType),
						zap.Error(err),
					)
				}
				continue
			}

			metrics.RecordOutboxDispatch(event.RoutingKey, "retry")
			if err := d.repo.MarkAsFailed(ctx, event.ID, d.maxRetries); err != nil {
				d.logger.Error("Failed to mark event as failed",
					zap.Int64("event_id", event.ID),
					zap.Error(err),
				)
			}
			continue
		}

		metrics.RecordOutboxDispatch(event.RoutingKey, "success")
		if err := d.repo.MarkAsSent(ctx, event.ID); err != nil {
			d.logger.Error("Failed to mark event as sent",
				zap.Int64("event_id", event.ID),
				zap.Error(err),
			)
		} else {
			d.logger.Debug("Event published successfully",
				zap.Int64("event_id", event.ID),
				zap.String("routing_key", event.RoutingKey),
			)
		}
	}
}

func (d *Dispatcher) publishEvent(ctx context.Context, event *Event) error {
	var payload interface{}
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	// Payloads carry the originating request's trace id; put it back on
	// the context so the publisher forwards it.
	ctx = d.extractTraceIDFromPayload(ctx, event.Payload)

	if err := d.publisher.PublishWithContext(ctx, event.RoutingKey, payload); err != nil {
		return fmt.Errorf("failed to publish to MQ: %w", err)
	}

	return nil
}

func (d *Dispatcher) extractTraceIDFromPayload(ctx context.Context, payload json.RawMessage) context.Context {
	var payloadMap map[string]interface{}
	if err := json.Unmarshal(payload, &payloadMap); err != nil {
		return ctx
	}

	if traceID, ok := payloadMap["trace_id"].(string); ok && traceID != "" {
		ctx = trace.WithContext(ctx, traceID)
	}

	return ctx
}
