package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/briefing"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/ws"
)

// Processing action names accepted by POST /process.
const (
	ActionEmail     = "email"
	ActionMessaging = "messaging"
	ActionAudit     = "audit"
	ActionReport    = "report"
)

// ProcessFunc is one named processing routine. It returns a human-readable
// confirmation message.
type ProcessFunc func(ctx context.Context, data map[string]any) (string, error)

// Registry is the closed set of named processing routines. Dispatch by an
// unregistered name is a validation error, never a crash.
type Registry struct {
	routines map[string]ProcessFunc
	log      *logrus.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(log *logrus.Logger) *Registry {
	return &Registry{routines: make(map[string]ProcessFunc), log: log}
}

// Register binds a routine to a name, replacing any previous binding.
func (r *Registry) Register(name string, fn ProcessFunc) {
	r.routines[name] = fn
}

// Actions returns the registered routine names, sorted.
func (r *Registry) Actions() []string {
	names := make([]string, 0, len(r.routines))
	for name := range r.routines {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Dispatch runs the named routine.
func (r *Registry) Dispatch(ctx context.Context, name string, data map[string]any) (string, error) {
	fn, ok := r.routines[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", models.ErrUnknownAction, name)
	}

	r.log.WithField("action", name).Info("processing action dispatched")

	return fn(ctx, data)
}

// EmailProcessor is the inbox-handling collaborator.
type EmailProcessor interface {
	ProcessInbox(ctx context.Context) (int, error)
}

// MessageProcessor is the messaging collaborator.
type MessageProcessor interface {
	ProcessMessages(ctx context.Context) (int, error)
}

// ProcessDeps holds the collaborators the built-in routines call.
type ProcessDeps struct {
	Briefings *briefing.Generator
	Activity  ActivityRecorder
	Hub       Broadcaster
	Email     EmailProcessor
	Messages  MessageProcessor
	Log       *logrus.Logger
}

// NewProcessRegistry builds the standard routine set: email, messaging,
// audit, report.
func NewProcessRegistry(deps ProcessDeps) *Registry {
	r := NewRegistry(deps.Log)

	r.Register(ActionEmail, func(ctx context.Context, _ map[string]any) (string, error) {
		if deps.Email == nil {
			return "email processing is not configured", nil
		}

		handled, err := deps.Email.ProcessInbox(ctx)
		if err != nil {
			return "", fmt.Errorf("email processing: %w", err)
		}

		deps.Activity.Enqueue(models.ActivityEntry{
			ActionType:  models.ActionEmailSent,
			Description: fmt.Sprintf("Processed %d inbox items", handled),
		})

		return fmt.Sprintf("processed %d emails", handled), nil
	})

	r.Register(ActionMessaging, func(ctx context.Context, _ map[string]any) (string, error) {
		if deps.Messages == nil {
			return "messaging is not configured", nil
		}

		handled, err := deps.Messages.ProcessMessages(ctx)
		if err != nil {
			return "", fmt.Errorf("message processing: %w", err)
		}

		deps.Activity.Enqueue(models.ActivityEntry{
			ActionType:  models.ActionMessageSent,
			Description: fmt.Sprintf("Processed %d messages", handled),
		})

		return fmt.Sprintf("processed %d messages", handled), nil
	})

	r.Register(ActionAudit, func(ctx context.Context, _ map[string]any) (string, error) {
		name, err := deps.Briefings.WeeklyBriefing(ctx, time.Now())
		if err != nil {
			return "", err
		}

		deps.Activity.Enqueue(models.ActivityEntry{
			ActionType:  models.ActionAuditCompleted,
			Description: "Weekly financial audit completed: " + name,
		})
		deps.Hub.BroadcastEvent(ws.EventAuditCompleted, map[string]any{"briefing": name})

		return "audit completed, briefing " + name, nil
	})

	r.Register(ActionReport, func(ctx context.Context, _ map[string]any) (string, error) {
		name, err := deps.Briefings.DailyStatus(ctx, time.Now())
		if err != nil {
			return "", err
		}

		deps.Activity.Enqueue(models.ActivityEntry{
			ActionType:  models.ActionReportGenerated,
			Description: "Daily status report generated: " + name,
		})

		return "report generated: " + name, nil
	})

	return r
}
