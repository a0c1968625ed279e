// Package briefing implements the weekly financial audit: transaction
// categorization, issue detection, and rendering of the briefing and daily
// status documents into the vault.
package briefing

import (
	"fmt"
	"strings"
	"time"
)

// subscriptionPatterns maps a vendor domain found in a transaction
// description to its display name.
var subscriptionPatterns = map[string]string{
	"netflix.com":     "Netflix",
	"spotify.com":     "Spotify",
	"adobe.com":       "Adobe Creative Cloud",
	"notion.so":       "Notion",
	"slack.com":       "Slack",
	"zoom.us":         "Zoom",
	"microsoft.com":   "Microsoft 365",
	"google.com":      "Google Workspace",
	"aws.amazon.com":  "Amazon Web Services",
	"heroku.com":      "Heroku",
	"digitalocean.com": "DigitalOcean",
	"stripe.com":      "Stripe Fees",
	"paypal.com":      "PayPal Processing",
	"square.com":      "Square Processing",
}

// Transaction is one row from the transaction source.
type Transaction struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // YYYY-MM-DD
}

// Categorized is a transaction with its derived type and category.
type Categorized struct {
	Type     string
	Name     string
	Amount   float64
	Date     string
	Category string
}

// Transaction categories.
const (
	TypeSubscription = "subscription"
	TypePayment      = "payment"
	TypePurchase     = "purchase"
	TypeUnknown      = "unknown"
)

// Categorize determines a transaction's type from its description.
func Categorize(t Transaction) Categorized {
	desc := strings.ToLower(t.Description)

	for pattern, name := range subscriptionPatterns {
		if strings.Contains(desc, pattern) {
			return Categorized{Type: TypeSubscription, Name: name, Amount: t.Amount, Date: t.Date, Category: "Software/Service"}
		}
	}

	if containsAny(desc, "payment", "transfer", "deposit") {
		return Categorized{Type: TypePayment, Name: title(t.Description), Amount: t.Amount, Date: t.Date, Category: "Payment"}
	}

	if containsAny(desc, "purchase", "buy", "order", "amazon", "store") {
		return Categorized{Type: TypePurchase, Name: title(t.Description), Amount: t.Amount, Date: t.Date, Category: "Purchase"}
	}

	return Categorized{Type: TypeUnknown, Name: title(t.Description), Amount: t.Amount, Date: t.Date, Category: "Uncategorized"}
}

// WeekAnalysis aggregates one week of categorized transactions.
type WeekAnalysis struct {
	TotalIncome      float64
	TotalSpent       float64
	NetChange        float64
	Subscriptions    []Categorized
	Payments         []Categorized
	Purchases        []Categorized
	Other            []Categorized
	Issues           []string
	TransactionCount int
}

// expensiveSubscription is the flag threshold for a single subscription charge.
const expensiveSubscription = 100

// AnalyzeWeek filters transactions to the period and categorizes them,
// flagging expensive subscriptions and duplicate charges.
func AnalyzeWeek(txns []Transaction, start, end time.Time) WeekAnalysis {
	var a WeekAnalysis

	type dupKey struct {
		desc   string
		amount float64
	}
	seen := make(map[dupKey]bool)
	duplicates := 0

	for _, t := range txns {
		date, err := time.Parse("2006-01-02", t.Date)
		if err != nil || date.Before(start) || date.After(end) {
			continue
		}

		a.TransactionCount++
		if t.Amount < 0 {
			a.TotalSpent += -t.Amount
		} else {
			a.TotalIncome += t.Amount
		}

		key := dupKey{desc: t.Description, amount: t.Amount}
		if seen[key] {
			duplicates++
		}
		seen[key] = true

		c := Categorize(t)
		switch c.Type {
		case TypeSubscription:
			a.Subscriptions = append(a.Subscriptions, c)
		case TypePayment:
			a.Payments = append(a.Payments, c)
		case TypePurchase:
			a.Purchases = append(a.Purchases, c)
		default:
			a.Other = append(a.Other, c)
		}
	}

	a.NetChange = a.TotalIncome - a.TotalSpent

	for _, sub := range a.Subscriptions {
		if -sub.Amount > expensiveSubscription || sub.Amount > expensiveSubscription {
			a.Issues = append(a.Issues, fmt.Sprintf("Expensive subscription: %s ($%.2f)", sub.Name, abs(sub.Amount)))
		}
	}
	if duplicates > 0 {
		a.Issues = append(a.Issues, fmt.Sprintf("Potential duplicate transactions: %d found", duplicates))
	}

	return a
}

// highSpendThreshold triggers the weekly spending review suggestion.
const highSpendThreshold = 500

// Suggestions derives the proactive suggestion list from a week's analysis.
func Suggestions(a WeekAnalysis) []string {
	var out []string

	if len(a.Subscriptions) > 0 {
		names := make([]string, 0, len(a.Subscriptions))
		for _, s := range a.Subscriptions {
			names = append(names, s.Name)
		}
		out = append(out, fmt.Sprintf("Review subscriptions: %s. Are they all necessary?", strings.Join(names, ", ")))
	}

	if a.TotalSpent > highSpendThreshold {
		out = append(out, "High spending this week. Consider reviewing expenses.")
	}

	out = append(out, a.Issues...)

	return out
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}

	return false
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}

	return f
}

// title upper-cases the first letter of each word, like the source
// descriptions are displayed.
func title(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
