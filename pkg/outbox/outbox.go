// Package outbox implements the transactional outbox: events are written
// in the same transaction as the business data and dispatched to MQ by a
// background loop.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Event is one pending publication.
type Event struct {
	ID            int64
	AggregateType string
	AggregateID   *int64
	RoutingKey    string
	Payload       json.RawMessage
	Status        string
	RetryCount    int
	NextRetryAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// InsertEvent writes an event inside the caller's transaction so it
// commits or rolls back together with the business data.
func (r *Repository) InsertEvent(ctx context.Context, tx pgx.Tx, event *Event) error {
	query := `
		INSERT INTO outbox_events (aggregate_type, aggregate_id, routing_key, payload, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		event.AggregateType,
		event.AggregateID,
		event.RoutingKey,
		event.Payload,
		event.Status,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

// GetPendingEvents returns events due for dispatch.
func (r *Repository) GetPendingEvents(ctx context.Context, limit int) ([]*Event, error) {
	query := `
		SELECT id, aggregate_type, aggregate_id, routing_key, payload, status,
		       retry_count, next_retry_at, created_at, updated_at
		FROM outbox_events
		WHERE status = 'pending'
		AND (next_retry_at IS NULL OR next_retry_at <= NOW())
		ORDER BY created_at ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// MarkAsSent marks an event as published.
func (r *Repository) MarkAsSent(ctx context.Context, eventID int64) error {
	query := `
		UPDATE outbox_events
		SET status = 'sent', updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, query, eventID); err != nil {
		return fmt.Errorf("failed to mark event as sent: %w", err)
	}
	return nil
}

// MarkAsFailed bumps the retry count and schedules the next attempt;
// past maxRetries the event goes to 'failed' and stops retrying.
func (r *Repository) MarkAsFailed(ctx context.Context, eventID int64, maxRetries int) error {
	var retryCount int
	err := r.db.QueryRow(ctx, `
		SELECT retry_count FROM outbox_events WHERE id = $1
	`, eventID).Scan(&retryCount)
	if err != nil {
		return fmt.Errorf("failed to get retry count: %w", err)
	}

	retryCount++

	var status string
	var nextRetryAt *time.Time
	if retryCount >= maxRetries {
		status = "failed"
	} else {
		status = "pending"
		nextRetry := time.Now().Add(time.Duration(retryCount) * 5 * time.Second) // 5s, 10s, 15s...
		nextRetryAt = &nextRetry
	}

	query := `
		UPDATE outbox_events
		SET status = $1, retry_count = $2, next_retry_at = $3, updated_at = NOW()
		WHERE id = $4
	`

	if _, err = r.db.Exec(ctx, query, status, retryCount, nextRetryAt, eventID); err != nil {
		return fmt.Errorf("failed to mark event as failed: %w", err)
	}
	return nil
}

// MarkAsDead parks an event that will never succeed (bad payload, missing
// aggregate). Dead events only move again through an explicit replay.
func (r *Repository) MarkAsDead(ctx context.Context, eventID int64) error {
	query := `
		UPDATE outbox_events
		SET status = 'failed', next_retry_at = NULL, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, query, eventID); err != nil {
		return fmt.Errorf("failed to mark event as dead: %w", err)
	}
	return nil
}

// GetEventByID fetches one event, for replay tooling.
func (r *Repository) GetEventByID(ctx context.Context, eventID int64) (*Event, error) {
	query := `
		SELECT id, aggregate_type, aggregate_id, routing_key, payload, status,
		       retry_count, next_retry_at, created_at, updated_at
		FROM outbox_events
		WHERE id = $1
	`

	var e Event
	err := r.db.QueryRow(ctx, query, eventID).Scan(
		&e.ID,
		&e.AggregateType,
		&e.AggregateID,
		&e.RoutingKey,
		&e.Payload,
		&e.Status,
		&e.RetryCount,
		&e.NextRetryAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("event not found: %d", eventID)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &e, nil
}

// ReplayEvent resets an event to pending with a clean retry budget.
func (r *Repository) ReplayEvent(ctx context.Context, eventID int64) error {
	query := `
		UPDATE outbox_events
		SET status = 'pending', retry_count = 0, next_retry_at = NULL, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, query, eventID); err != nil {
		return fmt.Errorf("failed to replay event: %w", err)
	}
	return nil
}

// GetFailedEvents lists parked events, newest first.
func (r *Repository) GetFailedEvents(ctx context.Context, limit int) ([]*Event, error) {
	query := `
		SELECT id, aggregate_type, aggregate_id, routing_key, payload, status,
		       retry_count, next_retry_at, created_at, updated_at
		FROM outbox_events
		WHERE status = 'failed'
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query failed events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]*Event, error) {
	var events []*Event
	for rows.Next() {
		var e Event
		err := rows.Scan(
			&e.ID,
			&e.AggregateType,
			&e.AggregateID,
			&e.RoutingKey,
			&e.Payload,
			&e.Status,
			&e.RetryCount,
			&e.NextRetryAt,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}
