package models

// Stats is the named-counter block of the dashboard, sourced from the stats
// side-file. AIActive lives here so the operating flag survives restarts.
type Stats struct {
	Revenue       float64 `json:"revenue"`
	PendingTasks  int     `json:"pending_tasks"`
	UnreadEmails  int     `json:"unread_emails"`
	UptimePercent float64 `json:"uptime_percent"`
	AIActive      bool    `json:"ai_active"`
}

// DefaultStats returns the compiled-in fallback used whenever the side-file
// is missing or unparsable.
func DefaultStats() Stats {
	return Stats{
		Revenue:       0,
		PendingTasks:  0,
		UnreadEmails:  0,
		UptimePercent: 99.9,
		AIActive:      true,
	}
}

// DashboardSnapshot is the fully composed read model served to clients.
// It is recomputed on every read and never persisted.
type DashboardSnapshot struct {
	AIActive         bool              `json:"ai_active"`
	PendingApprovals []ApprovalRequest `json:"pending_approvals"`
	RecentActivities []FeedItem        `json:"recent_activities"`
	Stats            Stats             `json:"stats"`
}

// DefaultSnapshot is the static fallback when composition fails entirely.
func DefaultSnapshot() DashboardSnapshot {
	stats := DefaultStats()

	return DashboardSnapshot{
		AIActive:         stats.AIActive,
		PendingApprovals: []ApprovalRequest{},
		RecentActivities: []FeedItem{},
		Stats:            stats,
	}
}
