package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/metrics"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/vault"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/ws"
)

// dashboardDoc is the rendered status document at the vault root; the count
// lines inside it are refreshed in place.
const dashboardDoc = "Dashboard.md"

// Housekeeper performs the periodic intake and dashboard maintenance pass.
type Housekeeper struct {
	vault    *vault.Vault
	activity ActivityRecorder
	hub      Broadcaster
	log      *logrus.Logger
	now      func() time.Time
}

// NewHousekeeper creates a Housekeeper.
func NewHousekeeper(v *vault.Vault, rec ActivityRecorder, hub Broadcaster, log *logrus.Logger) *Housekeeper {
	return &Housekeeper{vault: v, activity: rec, hub: hub, log: log, now: time.Now}
}

// Housekeep runs one full pass: intake processing, dashboard document
// refresh, and the heartbeat broadcast.
func (h *Housekeeper) Housekeep(ctx context.Context) error {
	if err := h.ProcessIntake(ctx); err != nil {
		return err
	}

	if err := h.RefreshDashboard(); err != nil {
		return err
	}

	pending := h.vault.Count(vault.BucketPending, ".md")
	metrics.PendingApprovals.Set(float64(pending))

	h.hub.BroadcastEvent(ws.EventStatusUpdate, map[string]any{
		"pending_approvals": pending,
		"heartbeat":         true,
	})

	return nil
}

// ProcessIntake turns each file dropped into Needs_Action into a plan file
// under Plans and moves the original to Done.
func (h *Housekeeper) ProcessIntake(ctx context.Context) error {
	names, err := h.vault.List(vault.BucketNeedsAction, ".md")
	if err != nil {
		return fmt.Errorf("intake listing: %w", err)
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := h.vault.Read(vault.BucketNeedsAction, name)
		if err != nil {
			h.log.WithError(err).WithField("file", name).Warn("intake file unreadable, skipping")
			continue
		}

		planName := h.writePlan(name, content)
		if planName == "" {
			continue
		}

		if err := h.vault.Rename(vault.BucketNeedsAction, name, vault.BucketDone); err != nil {
			h.log.WithError(err).WithField("file", name).Warn("intake file move failed")
			continue
		}

		h.activity.Enqueue(models.ActivityEntry{
			ActionType:  models.ActionPlanCreated,
			Description: "Plan " + planName + " created for " + name,
		})
	}

	return nil
}

// writePlan renders the plan document for one intake file. Returns the plan
// file name, or empty string on write failure.
func (h *Housekeeper) writePlan(source string, content []byte) string {
	stem := strings.TrimSuffix(source, ".md")
	now := h.now().UTC()
	planName := fmt.Sprintf("PLAN_%s_%d.md", stem, now.Unix())

	var b strings.Builder
	fmt.Fprintf(&b, "---\ncreated: %s\nstatus: pending\noriginal_file: %s\n---\n\n", now.Format(time.RFC3339), source)
	fmt.Fprintf(&b, "# Plan for %s\n\n", stem)
	fmt.Fprintf(&b, "## Objective\nProcess the action requested in %s\n\n", source)
	fmt.Fprintf(&b, "## Original Content\n%s\n\n", string(content))
	b.WriteString("## Steps\n- [ ] Analyze the request\n- [ ] Determine appropriate action\n- [ ] Execute action (if approved)\n- [ ] Log results\n- [ ] Mark as complete\n")

	if err := h.vault.WriteAtomic(vault.BucketPlans, planName, []byte(b.String())); err != nil {
		h.log.WithError(err).WithField("file", source).Warn("plan write failed")

		return ""
	}

	return planName
}

var (
	pendingActionsLine   = regexp.MustCompile(`- \*\*Pending Actions\*\*: \d+`)
	pendingApprovalsLine = regexp.MustCompile(`- \*\*Pending Approvals\*\*: \d+`)
)

// RefreshDashboard rewrites the count lines of the Dashboard.md document in
// place, seeding the document on first run.
func (h *Housekeeper) RefreshDashboard() error {
	actions := h.vault.Count(vault.BucketNeedsAction, ".md")
	approvals := h.vault.Count(vault.BucketPending, ".md")

	var content string
	data, err := h.vault.ReadDoc(dashboardDoc)
	if err != nil {
		content = seedDashboard()
	} else {
		content = string(data)
	}

	content = pendingActionsLine.ReplaceAllString(content, fmt.Sprintf("- **Pending Actions**: %d", actions))
	content = pendingApprovalsLine.ReplaceAllString(content, fmt.Sprintf("- **Pending Approvals**: %d", approvals))

	return h.vault.WriteDocAtomic(dashboardDoc, []byte(content))
}

// seedDashboard is the initial status document template.
func seedDashboard() string {
	return `# AI Employee Dashboard

## Status
- **Pending Actions**: 0
- **Pending Approvals**: 0
- **System Status**: Operational
`
}
