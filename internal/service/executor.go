package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

// JournalExecutor is the default action executor: it records the executed
// action in the activity journal. Deployments with real downstream systems
// (payment rails, mail transport) substitute their own ActionExecutor.
type JournalExecutor struct {
	activity ActivityRecorder
	log      *logrus.Logger
}

func NewJournalExecutor(activity ActivityRecorder, log *logrus.Logger) *JournalExecutor {
	return &JournalExecutor{activity: activity, log: log}
}

// Execute records the approved action. The action type in the journal
// mirrors the request kind so the feed shows a payment icon for payments
// and a mail icon for emails.
func (e *JournalExecutor) Execute(_ context.Context, req models.ApprovalRequest) error {
	entry := models.ActivityEntry{
		Timestamp:   time.Now().UTC(),
		ActionType:  actionTypeFor(req.Kind),
		Description: executionDescription(req),
	}
	e.activity.Enqueue(entry)

	e.log.WithFields(logrus.Fields{"id": req.ID, "kind": req.Kind}).Info("action executed")

	return nil
}

func actionTypeFor(kind string) string {
	switch kind {
	case "make_payment", "payment":
		return models.ActionPaymentProcessed
	case "send_email", "email":
		return models.ActionEmailSent
	case "send_message", "message":
		return models.ActionMessageSent
	default:
		return models.ActionApprovalDecided
	}
}

func executionDescription(req models.ApprovalRequest) string {
	switch {
	case req.Amount > 0 && req.Recipient != "":
		return fmt.Sprintf("Processed $%.2f to %s (%s)", req.Amount, req.Recipient, req.ID)
	case req.Title != "":
		return fmt.Sprintf("Executed approved action: %s", req.Title)
	default:
		return fmt.Sprintf("Executed approved action %s", req.ID)
	}
}
