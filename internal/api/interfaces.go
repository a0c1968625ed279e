package api

import (
	"context"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

// SnapshotProvider aggregates the dashboard view.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) models.DashboardSnapshot
}

// ApprovalService lists pending approvals and applies decisions.
type ApprovalService interface {
	ListPending(ctx context.Context) ([]models.ApprovalRequest, error)
	Decide(ctx context.Context, id string, outcome models.Outcome) (*models.ApprovalRequest, error)
}

// ProcessDispatcher routes manual action requests to registered routines.
type ProcessDispatcher interface {
	Dispatch(ctx context.Context, name string, data map[string]any) (string, error)
	Actions() []string
}

// ClientCounter reports connected WebSocket clients, for the health endpoint.
type ClientCounter interface {
	ClientCount() int
}
