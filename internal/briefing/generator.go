package briefing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/vault"
)

// TransactionSource provides the transactions to audit. The accounting
// integration is an external collaborator; the built-in sample source keeps
// briefings working without it.
type TransactionSource interface {
	Transactions(ctx context.Context, start, end time.Time) ([]Transaction, error)
}

// Generator renders briefing and status documents into the Briefings bucket.
type Generator struct {
	vault  *vault.Vault
	source TransactionSource
	log    *logrus.Logger
}

// NewGenerator creates a Generator. A nil source falls back to sample data.
func NewGenerator(v *vault.Vault, source TransactionSource, log *logrus.Logger) *Generator {
	if source == nil {
		source = sampleSource{}
	}

	return &Generator{vault: v, source: source, log: log}
}

// WeeklyBriefing analyzes the current week (Monday through Sunday) and
// writes the rendered briefing document. Returns the written file name.
func (g *Generator) WeeklyBriefing(ctx context.Context, now time.Time) (string, error) {
	start, end := weekBounds(now)

	txns, err := g.source.Transactions(ctx, start, end)
	if err != nil {
		return "", fmt.Errorf("weekly briefing: %w", err)
	}

	analysis := AnalyzeWeek(txns, start, end)
	doc := renderBriefing(now, start, end, analysis)

	name := fmt.Sprintf("%s_Weekly_Briefing.md", now.UTC().Format("2006-01-02"))
	if err := g.vault.WriteAtomic(vault.BucketBriefings, name, []byte(doc)); err != nil {
		return "", err
	}

	g.log.WithField("file", name).Info("weekly briefing generated")

	return name, nil
}

// DailyStatus writes the daily status report with current pending counts.
func (g *Generator) DailyStatus(_ context.Context, now time.Time) (string, error) {
	pendingActions := g.vault.Count(vault.BucketNeedsAction, ".md")
	pendingApprovals := g.vault.Count(vault.BucketPending, ".md")

	doc := renderDailyStatus(now, pendingActions, pendingApprovals)

	name := fmt.Sprintf("%s_Daily_Status.md", now.UTC().Format("2006-01-02"))
	if err := g.vault.WriteAtomic(vault.BucketBriefings, name, []byte(doc)); err != nil {
		return "", err
	}

	g.log.WithField("file", name).Info("daily status generated")

	return name, nil
}

// weekBounds returns Monday 00:00 through Sunday of the week containing t.
func weekBounds(t time.Time) (start, end time.Time) {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week
	}

	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(weekday - 1))
	end = start.AddDate(0, 0, 6)

	return start, end
}

// renderBriefing formats the weekly briefing document.
func renderBriefing(now, start, end time.Time, a WeekAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Monday Morning CEO Briefing - %s\n\n", now.UTC().Format("2006-01-02"))
	fmt.Fprintf(&b, "---\ngenerated: %s\nperiod: %s to %s\n---\n\n",
		now.UTC().Format(time.RFC3339), start.Format("2006-01-02"), end.Format("2006-01-02"))

	b.WriteString("## Executive Summary\nWeekly summary of business activities and achievements.\n\n")

	trend := "Negative"
	if a.NetChange > 0 {
		trend = "Positive"
	}
	fmt.Fprintf(&b, "## Revenue\n- **This Week**: $%.2f\n- **Spent**: $%.2f\n- **Net**: $%.2f\n- **Trend**: %s\n\n",
		a.TotalIncome, a.TotalSpent, a.NetChange, trend)

	fmt.Fprintf(&b, "## Transaction Summary\n- **Total Transactions**: %d\n- **Active Subscriptions**: %d\n\n",
		a.TransactionCount, len(a.Subscriptions))

	b.WriteString("## Bottlenecks\n")
	if len(a.Issues) == 0 {
		b.WriteString("- None identified\n\n")
	} else {
		fmt.Fprintf(&b, "- %s\n\n", strings.Join(a.Issues, "; "))
	}

	b.WriteString("## Proactive Suggestions\n\n### Cost Optimization\n")
	suggestions := Suggestions(a)
	if len(suggestions) == 0 {
		b.WriteString("- No specific suggestions at this time\n")
	} else {
		for _, s := range suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	b.WriteString("\n### Upcoming Actions\n- Review flagged transactions\n- Assess subscription values\n- Plan next week's budget\n")

	return b.String()
}

// renderDailyStatus formats the daily status report.
func renderDailyStatus(now time.Time, pendingActions, pendingApprovals int) string {
	var b strings.Builder

	date := now.UTC().Format("2006-01-02")
	fmt.Fprintf(&b, "# Daily Status Report - %s\n\n", date)
	fmt.Fprintf(&b, "---\ngenerated: %s\n---\n\n", now.UTC().Format(time.RFC3339))
	b.WriteString("## Today's Overview\n")
	fmt.Fprintf(&b, "- **Pending Actions**: %d\n", pendingActions)
	fmt.Fprintf(&b, "- **Pending Approvals**: %d\n", pendingApprovals)
	b.WriteString("- **System Status**: Operational\n")

	return b.String()
}

// sampleSource stands in for the accounting collaborator.
type sampleSource struct{}

func (sampleSource) Transactions(_ context.Context, start, _ time.Time) ([]Transaction, error) {
	day := func(offset int) string { return start.AddDate(0, 0, offset).Format("2006-01-02") }

	return []Transaction{
		{Description: "Netflix.com Subscription", Amount: -15.99, Date: day(0)},
		{Description: "Adobe Creative Cloud", Amount: -52.99, Date: day(0)},
		{Description: "Client Payment - Project Alpha", Amount: 2500.00, Date: day(0)},
		{Description: "AWS Services", Amount: -89.50, Date: day(2)},
		{Description: "Office Supplies", Amount: -45.20, Date: day(3)},
		{Description: "Client Payment - Project Beta", Amount: 1800.00, Date: day(4)},
	}, nil
}
