package service_test

import (
	"context"
	"sync"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

// mockRepo implements service.ApprovalRepository.
type mockRepo struct {
	listFn   func(ctx context.Context) ([]models.ApprovalRequest, error)
	decideFn func(ctx context.Context, id string, outcome models.Outcome) (*models.ApprovalRequest, error)
}

func (m *mockRepo) ListPending(ctx context.Context) ([]models.ApprovalRequest, error) {
	return m.listFn(ctx)
}

func (m *mockRepo) Decide(ctx context.Context, id string, outcome models.Outcome) (*models.ApprovalRequest, error) {
	return m.decideFn(ctx, id, outcome)
}

// mockRecorder implements service.ActivityRecorder, capturing entries.
type mockRecorder struct {
	mu      sync.Mutex
	entries []models.ActivityEntry
}

func (m *mockRecorder) Enqueue(entry models.ActivityEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
}

func (m *mockRecorder) all() []models.ActivityEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.ActivityEntry(nil), m.entries...)
}

// mockHub implements service.Broadcaster, capturing event types.
type mockHub struct {
	mu     sync.Mutex
	events []string
}

func (m *mockHub) BroadcastEvent(eventType string, _ any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, eventType)
}

func (m *mockHub) all() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.events...)
}

// mockExecutor implements service.ActionExecutor.
type mockExecutor struct {
	mu    sync.Mutex
	calls []string
	err   error
	done  chan struct{}
}

func (m *mockExecutor) Execute(_ context.Context, req models.ApprovalRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req.ID)
	if m.done != nil {
		close(m.done)
		m.done = nil
	}

	return m.err
}

func (m *mockExecutor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.calls)
}

// mockFeed implements service.FeedReader.
type mockFeed struct {
	items []models.FeedItem
}

func (m *mockFeed) Recent(_ int) []models.FeedItem { return m.items }

// mockStats implements service.StatsLoader.
type mockStats struct {
	stats models.Stats
}

func (m *mockStats) Load() models.Stats { return m.stats }
