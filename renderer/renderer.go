// Package renderer builds markdown reports from the ledger's aggregates.
// Each report has a view-model struct populated by a New* constructor and a
// main template assembled from embedded partials.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderDashboard renders the Dashboard struct to a markdown string.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_title":        "dashboard_title.md",
		"dashboard_totals":       "dashboard_totals.md",
		"dashboard_months":       "dashboard_months.md",
		"dashboard_categories":   "dashboard_categories.md",
		"dashboard_transactions": "dashboard_transactions.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// RenderExpenses renders the ExpenseReport struct to a markdown string.
func RenderExpenses(r *ExpenseReport) string {
	partials := map[string]string{
		"expenses_title":        "expenses_title.md",
		"expenses_stats":        "expenses_stats.md",
		"expenses_categories":   "expenses_categories.md",
		"expenses_trend":        "expenses_trend.md",
		"expenses_transactions": "expenses_transactions.md",
	}
	return renderTemplate("expenses", "expenses.md", partials, r)
}

// RenderPlan renders the PlanReport struct to a markdown string.
func RenderPlan(p *PlanReport) string {
	partials := map[string]string{
		"plan_title":      "plan_title.md",
		"plan_summary":    "plan_summary.md",
		"plan_categories": "plan_categories.md",
	}
	return renderTemplate("plan", "plan.md", partials, p)
}

// RenderNetWorth renders the NetWorthReport struct to a markdown string.
func RenderNetWorth(r *NetWorthReport) string {
	partials := map[string]string{
		"networth_title":       "networth_title.md",
		"networth_summary":     "networth_summary.md",
		"networth_assets":      "networth_assets.md",
		"networth_liabilities": "networth_liabilities.md",
	}
	return renderTemplate("networth", "networth.md", partials, r)
}

// RenderTransactions renders a transaction table to a markdown string.
func RenderTransactions(t *TransactionTable) string {
	return renderTemplate("transactions", "transactions.md", nil, t)
}

// RenderRecords renders the record list to a markdown string.
func RenderRecords(r *RecordList) string {
	return renderTemplate("records", "records.md", nil, r)
}

// RenderSavings renders the savings calculator output to a markdown string.
func RenderSavings(s *SavingsReport) string {
	return renderTemplate("savings", "savings.md", nil, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
