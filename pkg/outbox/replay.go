package outbox

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Replayer re-queues parked events so the dispatcher picks them up again.
// Exposed through the admin API only.
type Replayer struct {
	repo   *Repository
	logger *zap.Logger
}

func NewReplayer(repo *Repository, logger *zap.Logger) *Replayer {
	return &Replayer{repo: repo, logger: logger}
}

// Replay resets one failed event to pending.
func (r *Replayer) Replay(ctx context.Context, eventID int64) error {
	event, err := r.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return err
	}

	if event.Status != "failed" {
		return fmt.Errorf("event %d is %s, only failed events can be replayed", eventID, event.Status)
	}

	if err := r.repo.ReplayEvent(ctx, eventID); err != nil {
		return err
	}

	r.logger.Info("Event re-queued for dispatch",
		zap.Int64("event_id", eventID),
		zap.String("routing_key", event.RoutingKey),
	)
	return nil
}

// ReplayAllFailed re-queues every parked event, up to limit.
func (r *Replayer) ReplayAllFailed(ctx context.Context, limit int) (int, error) {
	events, err := r.repo.GetFailedEvents(ctx, limit)
	if err != nil {
		return 0, err
	}

	replayed := 0
	for _, event := range events {
		if err := r.repo.ReplayEvent(ctx, event.ID); err != nil {
			r.logger.Error("Failed to replay event",
				zap.Int64("event_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		replayed++
	}

	return replayed, nil
}
