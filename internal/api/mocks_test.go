package api_test

import (
	"context"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

// mockSnapshots implements api.SnapshotProvider.
type mockSnapshots struct {
	snapshotFn func(ctx context.Context) models.DashboardSnapshot
}

func (m *mockSnapshots) Snapshot(ctx context.Context) models.DashboardSnapshot {
	return m.snapshotFn(ctx)
}

// mockApprovals implements api.ApprovalService.
type mockApprovals struct {
	listFn   func(ctx context.Context) ([]models.ApprovalRequest, error)
	decideFn func(ctx context.Context, id string, outcome models.Outcome) (*models.ApprovalRequest, error)
}

func (m *mockApprovals) ListPending(ctx context.Context) ([]models.ApprovalRequest, error) {
	return m.listFn(ctx)
}

func (m *mockApprovals) Decide(ctx context.Context, id string, outcome models.Outcome) (*models.ApprovalRequest, error) {
	return m.decideFn(ctx, id, outcome)
}

// mockRegistry implements api.ProcessDispatcher.
type mockRegistry struct {
	dispatchFn func(ctx context.Context, name string, data map[string]any) (string, error)
	actions    []string
}

func (m *mockRegistry) Dispatch(ctx context.Context, name string, data map[string]any) (string, error) {
	return m.dispatchFn(ctx, name, data)
}

func (m *mockRegistry) Actions() []string { return m.actions }

// mockCounter implements api.ClientCounter.
type mockCounter struct{ n int }

func (m *mockCounter) ClientCount() int { return m.n }
