package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/api"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

func TestDashboardGet(t *testing.T) {
	t.Parallel()

	provider := &mockSnapshots{
		snapshotFn: func(context.Context) models.DashboardSnapshot {
			snap := models.DefaultSnapshot()
			snap.PendingApprovals = []models.ApprovalRequest{
				{ID: "sub_001", Status: models.StatusPending},
			}

			return snap
		},
	}

	r := newTestRouter()
	h := api.NewDashboardHandler(provider, testLogger())
	r.GET("/dashboard", h.Get)

	w := doRequest(r, http.MethodGet, "/dashboard", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var snap models.DashboardSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !snap.AIActive {
		t.Error("ai_active should default to true")
	}
	if len(snap.PendingApprovals) != 1 {
		t.Errorf("pending approvals = %+v", snap.PendingApprovals)
	}
}

func TestDashboardGet_EmptySnapshotHasNonNilSlices(t *testing.T) {
	t.Parallel()

	provider := &mockSnapshots{
		snapshotFn: func(context.Context) models.DashboardSnapshot {
			return models.DefaultSnapshot()
		},
	}

	r := newTestRouter()
	h := api.NewDashboardHandler(provider, testLogger())
	r.GET("/dashboard", h.Get)

	w := doRequest(r, http.MethodGet, "/dashboard", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	// Empty collections serialize as [], not null, so dashboards never
	// special-case a missing key.
	for _, key := range []string{"pending_approvals", "recent_activities"} {
		if string(raw[key]) == "null" {
			t.Errorf("%s serialized as null", key)
		}
	}
}
