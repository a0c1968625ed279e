package models

import "errors"

// Sentinel errors for request validation.
var (
	ErrMissingID      = errors.New("id is required")
	ErrMissingOutcome = errors.New("outcome is required")
	ErrMissingAction  = errors.New("action is required")
	ErrInvalidOutcome = errors.New("outcome must be approve or reject")
)

// ErrApprovalNotFound indicates the approval is absent from the pending
// bucket. Deciding an unknown or already-decided id is a benign race and
// maps to an unsuccessful result, not a server fault.
var ErrApprovalNotFound = errors.New("approval not found")

// ErrUnknownAction indicates a processing action name with no registered routine.
var ErrUnknownAction = errors.New("unknown action")
