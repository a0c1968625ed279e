package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/metrics"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/retry"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/ws"
)

// executeTimeout bounds one downstream action execution including retries.
const executeTimeout = 2 * time.Minute

// DecisionService applies approval decisions and their side effects:
// action execution on approve, the activity entry, and the push event.
type DecisionService struct {
	repo     ApprovalRepository
	activity ActivityRecorder
	hub      Broadcaster
	executor ActionExecutor
	log      *logrus.Logger
	retryCfg retry.Config
}

// NewDecisionService creates a DecisionService. executor may be nil when no
// action-execution collaborator is configured.
func NewDecisionService(repo ApprovalRepository, rec ActivityRecorder, hub Broadcaster, executor ActionExecutor, log *logrus.Logger) *DecisionService {
	return &DecisionService{
		repo:     repo,
		activity: rec,
		hub:      hub,
		executor: executor,
		log:      log,
		retryCfg: retry.DefaultConfig(),
	}
}

// ListPending exposes the repository listing to the API layer.
func (s *DecisionService) ListPending(ctx context.Context) ([]models.ApprovalRequest, error) {
	return s.repo.ListPending(ctx)
}

// Decide applies the outcome to the pending request. ErrApprovalNotFound
// passes through untouched: no activity entry, no broadcast, no execution.
// On approve the downstream action runs fire-and-forget with retry; its
// failure never rolls back the committed state transition.
func (s *DecisionService) Decide(ctx context.Context, id string, outcome models.Outcome) (*models.ApprovalRequest, error) {
	req, err := s.repo.Decide(ctx, id, outcome)
	if err != nil {
		return nil, err
	}

	metrics.DecisionsTotal.WithLabelValues(string(outcome)).Inc()

	if outcome == models.OutcomeApprove && s.executor != nil {
		go s.executeApproved(*req)
	}

	s.activity.Enqueue(models.ActivityEntry{
		ActionType:  models.ActionApprovalDecided,
		Description: fmt.Sprintf("%s %s: %s", req.Kind, req.Status, req.Title),
	})

	s.hub.BroadcastEvent(ws.EventStatusUpdate, map[string]any{
		"id":     req.ID,
		"status": req.Status,
	})

	return req, nil
}

// executeApproved invokes the action-execution collaborator. A hung or
// failing collaborator affects only this goroutine; the decision is already
// durable.
func (s *DecisionService) executeApproved(req models.ApprovalRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), executeTimeout)
	defer cancel()

	err := retry.Do(ctx, s.log, "execute action "+req.ID, s.retryCfg, func() error {
		return s.executor.Execute(ctx, req)
	})
	if err != nil {
		s.log.WithError(err).WithField("id", req.ID).Error("approved action execution failed")

		return
	}

	s.log.WithFields(logrus.Fields{"id": req.ID, "kind": req.Kind}).Info("approved action executed")
}
