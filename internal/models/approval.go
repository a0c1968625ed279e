// Package models defines the workflow engine's shared data types.
package models

import (
	"strings"
	"time"
)

// Status is the lifecycle state of an approval request.
type Status string

// Approval lifecycle states. A pending request lives in exactly one bucket;
// after a decision it lives in exactly one of Approved/Rejected.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Outcome is a decision applied to a pending approval.
type Outcome string

// Decision outcomes accepted by the workflow API.
const (
	OutcomeApprove Outcome = "approve"
	OutcomeReject  Outcome = "reject"
)

// ParseOutcome validates a decision outcome string.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(strings.ToLower(strings.TrimSpace(s))) {
	case OutcomeApprove:
		return OutcomeApprove, nil
	case OutcomeReject:
		return OutcomeReject, nil
	default:
		return "", ErrInvalidOutcome
	}
}

// Status returns the approval status an outcome transitions to.
func (o Outcome) Status() Status {
	if o == OutcomeApprove {
		return StatusApproved
	}

	return StatusRejected
}

// ApprovalRequest is one action proposed by the automation side, backed by a
// single file in the vault. Optional fields are zero values when the file's
// header is missing or malformed.
type ApprovalRequest struct {
	ID          string     `json:"id"`
	Kind        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Recipient   string     `json:"recipient"`
	Status      Status     `json:"status"`
	SourceFile  string     `json:"source_file"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
}

// DecideRequest is the body of POST /api/v1/approve.
type DecideRequest struct {
	ID      string `json:"id"`
	Outcome string `json:"outcome"`
}

// Validate checks that both required fields are present.
func (r DecideRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(r.Outcome) == "" {
		return ErrMissingOutcome
	}

	return nil
}

// ProcessRequest is the body of POST /api/v1/process.
type ProcessRequest struct {
	Action string         `json:"action"`
	Data   map[string]any `json:"data,omitempty"`
}
