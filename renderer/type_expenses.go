package renderer

import (
	"github.com/etnz/fingrow"
)

// ExpenseReport is the view model of the windowed expense report.
type ExpenseReport struct {
	Window string       `json:"window"`
	Range  string       `json:"range,omitempty"` // empty for all-time
	Date   fingrow.Date `json:"date"`

	Count   int           `json:"count"`
	Total   fingrow.Money `json:"total"`
	Average fingrow.Money `json:"average"`

	Categories []CategoryRow `json:"categories"`

	TrendName    string           `json:"-"` // "Daily" or "Monthly"
	Trend        []TrendRow       `json:"trend"`
	Transactions []TransactionRow `json:"transactions"`
}

// TrendRow is one bucket of the spending trend table, a day or a month.
type TrendRow struct {
	Label string        `json:"label"`
	Total fingrow.Money `json:"total"`
}

// NewExpenseReport creates an ExpenseReport view for the given window. The
// query, when not empty, filters transactions by description first; trend
// picks the granularity of the spending trend table, daily or monthly.
func NewExpenseReport(txs []fingrow.Transaction, w fingrow.Window, query, currency string, asOf fingrow.Date, trend fingrow.Period) *ExpenseReport {
	txs = fingrow.SearchByDescription(txs, query)
	txs = fingrow.FilterWindow(txs, w, asOf)

	r := &ExpenseReport{
		Window: w.String(),
		Date:   asOf,
	}
	if rg, bounded := w.Range(asOf); bounded {
		r.Range = rg.String()
	}

	stats := fingrow.SpendingStats(txs)
	r.Count = stats.Count
	r.Total = fingrow.M(stats.Total, currency)
	r.Average = fingrow.M(stats.Average, currency)

	for _, c := range fingrow.ExpensesByCategory(txs) {
		r.Categories = append(r.Categories, CategoryRow{Category: c.Category, Total: fingrow.M(c.Total, currency)})
	}

	switch trend {
	case fingrow.Monthly:
		r.TrendName = "Monthly"
		for _, p := range fingrow.MonthlySeries(fingrow.FilterType(txs, fingrow.Expense)) {
			r.Trend = append(r.Trend, TrendRow{Label: p.Label(), Total: fingrow.M(p.Expenses, currency)})
		}
	default:
		r.TrendName = "Daily"
		for _, p := range fingrow.DailySeries(txs) {
			r.Trend = append(r.Trend, TrendRow{Label: p.Date.String(), Total: fingrow.M(p.Total, currency)})
		}
	}

	for _, tx := range fingrow.FilterType(txs, fingrow.Expense) {
		r.Transactions = append(r.Transactions, newTransactionRow(tx, currency))
	}
	return r
}
