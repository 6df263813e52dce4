package util

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"
)

// IsRetryableError classifies an error for the outbox dispatcher.
// Returns (isRetryable, errorType).
func IsRetryableError(err error) (bool, string) {
	if err == nil {
		return false, ""
	}

	errStr := err.Error()

	// JSON decode errors: the payload will never parse better tomorrow.
	if _, ok := err.(*json.SyntaxError); ok {
		return false, "json_decode_error"
	}
	if _, ok := err.(*json.UnmarshalTypeError); ok {
		return false, "json_decode_error"
	}
	if strings.Contains(errStr, "json:") {
		return false, "json_decode_error"
	}

	// Database errors
	if errors.Is(err, pgx.ErrNoRows) {
		return false, "row_not_found"
	}
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "UNIQUE constraint") {
		return false, "duplicate_key"
	}
	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "timeout") {
		return true, "db_connection_error"
	}

	// Network errors
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true, "network_timeout"
		}
		return true, "network_error"
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true, "network_timeout"
		}
		return true, "network_error"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true, "timeout"
	}
	if errors.Is(err, context.Canceled) {
		return false, "context_canceled"
	}

	// Collaborator 5xx are transient; other statuses are not.
	if strings.Contains(errStr, "5xx") {
		return true, "collaborator_unavailable"
	}
	if strings.Contains(errStr, "circuit breaker is open") {
		return true, "circuit_open"
	}

	// Unknown errors get the conservative treatment.
	return false, "unknown_error"
}
