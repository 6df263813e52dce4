package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

const TraceIDKey = "trace_id"

// GenerateTraceID returns a new random trace id.
func GenerateTraceID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// FromContext extracts the trace id from the context, if any.
func FromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// WithContext attaches a trace id to the context.
func WithContext(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// HeaderName is the HTTP header used to propagate trace ids.
func HeaderName() string {
	return "X-Trace-ID"
}
