package ws

import (
	"encoding/json"
	"time"
)

// Push-channel event types. The channel is best-effort and carries only
// success/status events; clients reconcile real state via a snapshot pull.
const (
	EventAuditCompleted = "audit_completed"
	EventStatusUpdate   = "status_update"
)

// Event is the structured message sent to WebSocket clients.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
	Time time.Time       `json:"time"`
}
