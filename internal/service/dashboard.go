package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/activity"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/metrics"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

// Dashboard composes approvals, activity, and stats into one snapshot.
type Dashboard struct {
	approvals ApprovalRepository
	feed      FeedReader
	stats     StatsLoader
	log       *logrus.Logger
}

// NewDashboard creates the aggregator.
func NewDashboard(approvals ApprovalRepository, feed FeedReader, stats StatsLoader, log *logrus.Logger) *Dashboard {
	return &Dashboard{approvals: approvals, feed: feed, stats: stats, log: log}
}

// Snapshot recomputes the dashboard read model. Each failing source
// degrades to its default in isolation; the returned snapshot is always
// fully populated and renderable.
func (d *Dashboard) Snapshot(ctx context.Context) models.DashboardSnapshot {
	snap := models.DefaultSnapshot()

	st := d.stats.Load()
	snap.Stats = st
	snap.AIActive = st.AIActive

	pending, err := d.approvals.ListPending(ctx)
	if err != nil {
		d.log.WithError(err).Warn("snapshot: pending list unavailable, serving empty")
	} else {
		if pending == nil {
			pending = []models.ApprovalRequest{}
		}
		snap.PendingApprovals = pending
		metrics.PendingApprovals.Set(float64(len(pending)))
	}

	if feed := d.feed.Recent(activity.DefaultFeedSize); feed != nil {
		snap.RecentActivities = feed
	}

	return snap
}
