package renderer

import (
	"github.com/etnz/fingrow"
)

// recentLimit caps the recent-transactions section of the dashboard.
const recentLimit = 5

// Dashboard is the view model of the dashboard report. Amounts are Money
// values so templates get currency-aware formatting for free.
type Dashboard struct {
	Date fingrow.Date `json:"date"`

	// Lifetime totals.
	Balance  fingrow.Money `json:"balance"`
	Income   fingrow.Money `json:"income"`
	Expenses fingrow.Money `json:"expenses"`

	// AverageDailySpend is the spend per elapsed day of the current month.
	AverageDailySpend fingrow.Money `json:"averageDailySpend"`

	Months     []MonthRow       `json:"months"`
	Categories []CategoryRow    `json:"categories"`
	Recent     []TransactionRow `json:"recent"`
}

// MonthRow is one month of the income/expense history table.
type MonthRow struct {
	Label    string        `json:"label"`
	Income   fingrow.Money `json:"income"`
	Expenses fingrow.Money `json:"expenses"`
}

// CategoryRow is one category of a breakdown table.
type CategoryRow struct {
	Category string        `json:"category"`
	Total    fingrow.Money `json:"total"`
}

// TransactionRow is one transaction of a listing table.
type TransactionRow struct {
	ID          string        `json:"id"`
	Date        fingrow.Date  `json:"date"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Type        string        `json:"type"`
	Amount      fingrow.Money `json:"amount"`
}

// Signed renders the amount with a sign reflecting the money flow, expenses
// are negative.
func (r TransactionRow) Signed() string {
	if r.Type == string(fingrow.Expense) {
		return r.Amount.Neg().SignedString()
	}
	return r.Amount.SignedString()
}

// NewDashboard creates a Dashboard view from the transactions, newest first.
func NewDashboard(txs []fingrow.Transaction, currency string, asOf fingrow.Date) *Dashboard {
	totals := fingrow.SumTotals(txs)
	d := &Dashboard{
		Date:              asOf,
		Balance:           fingrow.M(totals.Balance, currency),
		Income:            fingrow.M(totals.Income, currency),
		Expenses:          fingrow.M(totals.Expenses, currency),
		AverageDailySpend: fingrow.M(fingrow.AverageDailySpend(txs, asOf), currency),
	}
	for _, p := range fingrow.MonthlySeries(txs) {
		d.Months = append(d.Months, MonthRow{
			Label:    p.Label(),
			Income:   fingrow.M(p.Income, currency),
			Expenses: fingrow.M(p.Expenses, currency),
		})
	}
	for _, c := range fingrow.ExpensesByCategory(txs) {
		d.Categories = append(d.Categories, CategoryRow{Category: c.Category, Total: fingrow.M(c.Total, currency)})
	}
	recent := txs
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	for _, tx := range recent {
		d.Recent = append(d.Recent, newTransactionRow(tx, currency))
	}
	return d
}

func newTransactionRow(tx fingrow.Transaction, currency string) TransactionRow {
	return TransactionRow{
		ID:          tx.ID,
		Date:        tx.Date,
		Description: tx.Description,
		Category:    tx.Category,
		Type:        string(tx.Type),
		Amount:      fingrow.M(tx.Amount, currency),
	}
}
