package models

import "time"

// Well-known activity action types. The display table below is total over
// these; unrecognized types degrade to the generic fallback instead of
// breaking rendering.
const (
	ActionEmailSent         = "email_sent"
	ActionMessageSent       = "message_sent"
	ActionPaymentProcessed  = "payment_processed"
	ActionApprovalDecided   = "approval_decided"
	ActionAuditCompleted    = "audit_completed"
	ActionReportGenerated   = "report_generated"
	ActionPlanCreated       = "plan_created"
	ActionSystemInitialized = "system_initialized"
)

// ActivityEntry is one line of the append-only day-bucket journal.
// Timestamp is both the sort key and the entry's identity within a day.
type ActivityEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	ActionType  string    `json:"action_type"`
	Description string    `json:"description"`
}

// ActivityDisplay holds the derived presentation fields for an action type.
// These are computed at read time, never stored.
type ActivityDisplay struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// FeedItem is an activity entry decorated for the dashboard feed.
type FeedItem struct {
	ActivityEntry
	ActivityDisplay
}

var activityDisplays = map[string]ActivityDisplay{
	ActionEmailSent:         {Title: "Email Sent", Icon: "📧", Color: "#3b82f6"},
	ActionMessageSent:       {Title: "Message Sent", Icon: "💬", Color: "#22c55e"},
	ActionPaymentProcessed:  {Title: "Payment Processed", Icon: "💳", Color: "#f59e0b"},
	ActionApprovalDecided:   {Title: "Approval Decided", Icon: "✅", Color: "#8b5cf6"},
	ActionAuditCompleted:    {Title: "Audit Completed", Icon: "📊", Color: "#06b6d4"},
	ActionReportGenerated:   {Title: "Report Generated", Icon: "📄", Color: "#64748b"},
	ActionPlanCreated:       {Title: "Plan Created", Icon: "🗂", Color: "#0ea5e9"},
	ActionSystemInitialized: {Title: "System Initialized", Icon: "🚀", Color: "#10b981"},
}

// defaultDisplay is the fallback tuple for unrecognized action types.
var defaultDisplay = ActivityDisplay{Title: "Activity", Icon: "•", Color: "#9ca3af"}

// DisplayFor returns the presentation tuple for an action type.
func DisplayFor(actionType string) ActivityDisplay {
	if d, ok := activityDisplays[actionType]; ok {
		return d
	}

	return defaultDisplay
}

// Feed decorates an entry with its display fields.
func (e ActivityEntry) Feed() FeedItem {
	return FeedItem{ActivityEntry: e, ActivityDisplay: DisplayFor(e.ActionType)}
}
