// Package service provides the workflow logic between API handlers, the
// scheduler, and the vault-backed stores.
package service

import (
	"context"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

// ApprovalRepository is the approval store the decision service depends on.
type ApprovalRepository interface {
	ListPending(ctx context.Context) ([]models.ApprovalRequest, error)
	Decide(ctx context.Context, id string, outcome models.Outcome) (*models.ApprovalRequest, error)
}

// ActivityRecorder enqueues activity journal entries (fire-and-forget).
type ActivityRecorder interface {
	Enqueue(entry models.ActivityEntry)
}

// Broadcaster pushes state-change events to connected viewers.
type Broadcaster interface {
	BroadcastEvent(eventType string, data any)
}

// ActionExecutor runs the downstream action for an approved request. It is
// an external collaborator, assumed idempotent enough to tolerate a rare
// double invocation; this core cannot guarantee exactly-once.
type ActionExecutor interface {
	Execute(ctx context.Context, req models.ApprovalRequest) error
}

// FeedReader returns the decorated recent-activity feed.
type FeedReader interface {
	Recent(n int) []models.FeedItem
}

// StatsLoader returns the persisted dashboard counters.
type StatsLoader interface {
	Load() models.Stats
}
