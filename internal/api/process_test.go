package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/api"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

func TestProcessDispatch_KnownAction(t *testing.T) {
	t.Parallel()

	var gotName string
	registry := &mockRegistry{
		dispatchFn: func(_ context.Context, name string, _ map[string]any) (string, error) {
			gotName = name

			return "audit completed", nil
		},
	}

	r := newTestRouter()
	h := api.NewProcessHandler(registry, testLogger())
	r.POST("/process", h.Dispatch)

	w := doRequest(r, http.MethodPost, "/process", `{"action":"audit"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotName != "audit" {
		t.Errorf("dispatched action = %q", gotName)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Success || resp.Message != "audit completed" {
		t.Errorf("unexpected body: %+v", resp)
	}
}

func TestProcessDispatch_UnknownAction(t *testing.T) {
	t.Parallel()

	registry := &mockRegistry{
		dispatchFn: func(context.Context, string, map[string]any) (string, error) {
			return "", models.ErrUnknownAction
		},
		actions: []string{"audit", "email", "messaging", "report"},
	}

	r := newTestRouter()
	h := api.NewProcessHandler(registry, testLogger())
	r.POST("/process", h.Dispatch)

	w := doRequest(r, http.MethodPost, "/process", `{"action":"launch_rockets"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "audit") {
		t.Errorf("error should list known actions: %s", w.Body.String())
	}
}

func TestProcessDispatch_MissingAction(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewProcessHandler(&mockRegistry{}, testLogger())
	r.POST("/process", h.Dispatch)

	w := doRequest(r, http.MethodPost, "/process", `{"data":{"to":"ceo"}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
