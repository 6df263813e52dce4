// Package mq defines the event payloads this service publishes. Actual
// transport lives in pkg/mq and pkg/outbox.
package mq

import "time"

// Routing keys on the events topic exchange.
const (
	RoutingKeyScopeAnalyzed = "scope.analyzed"
	RoutingKeyWBSGenerated  = "wbs.generated"
)

// ScopeAnalyzedPayload is published after a scope analysis completes.
type ScopeAnalyzedPayload struct {
	SessionID     string    `json:"session_id"`
	UserID        int       `json:"user_id"`
	Complexity    string    `json:"complexity"`
	Industry      string    `json:"industry"`
	ScopeScore    int       `json:"scope_score"`
	NeedsQuestion bool      `json:"needs_question"`
	TraceID       string    `json:"trace_id,omitempty"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}

// WBSGeneratedPayload is published when a WBS is persisted.
type WBSGeneratedPayload struct {
	WBSID       string    `json:"wbs_id"`
	UserID      int       `json:"user_id"`
	ProjectName string    `json:"project_name"`
	TotalHours  float64   `json:"total_hours"`
	TotalCost   float64   `json:"total_cost"`
	TotalWeeks  int       `json:"total_weeks"`
	TraceID     string    `json:"trace_id,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}
