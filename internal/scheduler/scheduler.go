// Package scheduler drives the recurring background tasks: vault
// housekeeping on a short interval and the weekly audit briefing on a
// long one. Failed ticks are logged and counted but never stop the loop.
package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/metrics"
)

const (
	taskHousekeeping = "housekeeping"
	taskAudit        = "audit"
)

// Housekeeper performs one round of vault maintenance.
type Housekeeper interface {
	Housekeep(ctx context.Context) error
}

// Auditor runs the weekly financial audit routine.
type Auditor interface {
	RunAudit(ctx context.Context) error
}

// AuditorFunc adapts a plain function to the Auditor interface.
type AuditorFunc func(ctx context.Context) error

func (f AuditorFunc) RunAudit(ctx context.Context) error { return f(ctx) }

// Scheduler owns the two tickers and their panic isolation.
type Scheduler struct {
	housekeeper       Housekeeper
	auditor           Auditor
	housekeepInterval time.Duration
	auditInterval     time.Duration
	log               *logrus.Logger
}

func New(hk Housekeeper, auditor Auditor, housekeepInterval, auditInterval time.Duration, log *logrus.Logger) *Scheduler {
	if housekeepInterval <= 0 {
		housekeepInterval = 5 * time.Minute
	}
	if auditInterval <= 0 {
		auditInterval = 168 * time.Hour
	}

	return &Scheduler{
		housekeeper:       hk,
		auditor:           auditor,
		housekeepInterval: housekeepInterval,
		auditInterval:     auditInterval,
		log:               log,
	}
}

// Run blocks until ctx is cancelled. One housekeeping round fires
// immediately on startup so a fresh vault gets its dashboard without
// waiting a full interval.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.WithFields(logrus.Fields{
		"housekeep_interval": s.housekeepInterval.String(),
		"audit_interval":     s.auditInterval.String(),
	}).Info("Scheduler started")

	housekeep := time.NewTicker(s.housekeepInterval)
	defer housekeep.Stop()
	audit := time.NewTicker(s.auditInterval)
	defer audit.Stop()

	s.runTask(ctx, taskHousekeeping, s.housekeeper.Housekeep)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Scheduler stopped")
			return
		case <-housekeep.C:
			s.runTask(ctx, taskHousekeeping, s.housekeeper.Housekeep)
		case <-audit.C:
			s.runTask(ctx, taskAudit, s.auditor.RunAudit)
		}
	}
}

// runTask executes one tick with panic recovery so a misbehaving task
// cannot take down the loop.
func (s *Scheduler) runTask(ctx context.Context, name string, fn func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			metrics.SchedulerTicksTotal.WithLabelValues(name, "panic").Inc()
			s.log.WithField("task", name).Errorf("Scheduled task panicked: %v", r)
		}
	}()

	if err := fn(ctx); err != nil {
		metrics.SchedulerTicksTotal.WithLabelValues(name, "error").Inc()
		s.log.WithField("task", name).WithError(err).Error("Scheduled task failed")
		return
	}

	metrics.SchedulerTicksTotal.WithLabelValues(name, "ok").Inc()
}
