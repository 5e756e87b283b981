package fingrow

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Totals holds the income and expense sums of a set of transactions, and their
// balance. All sums are exact decimals.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// SumTotals computes the income and expense totals of txs. Balance is income
// minus expenses.
func SumTotals(txs []Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			t.Income = t.Income.Add(tx.Amount)
		case Expense:
			t.Expenses = t.Expenses.Add(tx.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expenses)
	return t
}

// AverageDailySpend computes the average spent per elapsed day of the month
// containing asOf: expenses from the first of the month through asOf, divided
// by the day of the month.
func AverageDailySpend(txs []Transaction, asOf Date) decimal.Decimal {
	if asOf.Day() == 0 {
		return decimal.Zero
	}
	month := Range{From: asOf.StartOf(Monthly), To: asOf}
	var spent decimal.Decimal
	for _, tx := range txs {
		if tx.Type == Expense && month.Contains(tx.Date) {
			spent = spent.Add(tx.Amount)
		}
	}
	return spent.Div(decimal.NewFromInt(int64(asOf.Day())))
}

// MonthPoint is one month of the income/expense series.
type MonthPoint struct {
	Month    Date // first day of the month
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Label returns the point's display label, year-qualified so that the same
// month name never collides across years.
func (p MonthPoint) Label() string { return p.Month.Format("Jan 2006") }

// MonthlySeries buckets transactions by calendar month and returns the income
// and expense sum per month, in chronological order.
func MonthlySeries(txs []Transaction) []MonthPoint {
	buckets := make(map[Date]MonthPoint)
	for _, tx := range txs {
		month := tx.Date.StartOf(Monthly)
		p := buckets[month]
		p.Month = month
		switch tx.Type {
		case Income:
			p.Income = p.Income.Add(tx.Amount)
		case Expense:
			p.Expenses = p.Expenses.Add(tx.Amount)
		}
		buckets[month] = p
	}
	series := make([]MonthPoint, 0, len(buckets))
	for _, p := range buckets {
		series = append(series, p)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month.Before(series[j].Month) })
	return series
}

// DayPoint is one calendar day of the spending series.
type DayPoint struct {
	Date  Date
	Total decimal.Decimal
}

// DailySeries buckets expense transactions by calendar day and returns the sum
// per day, in chronological order. Days without expenses are omitted.
func DailySeries(txs []Transaction) []DayPoint {
	buckets := make(map[Date]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type == Expense {
			buckets[tx.Date] = buckets[tx.Date].Add(tx.Amount)
		}
	}
	series := make([]DayPoint, 0, len(buckets))
	for d, total := range buckets {
		series = append(series, DayPoint{Date: d, Total: total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

// CategoryTotal is one category's share of a breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// breakdown sums amounts per category preserving the first-encountered order,
// then sorts descending by total. The sort is stable, so categories with equal
// totals keep their encounter order.
func breakdown(categories []string, amounts []decimal.Decimal) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for i, category := range categories {
		at, ok := index[category]
		if !ok {
			at = len(totals)
			index[category] = at
			totals = append(totals, CategoryTotal{Category: category})
		}
		totals[at].Total = totals[at].Total.Add(amounts[i])
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	return totals
}

// ExpensesByCategory sums expense transactions per category, largest first.
// Income transactions are ignored.
func ExpensesByCategory(txs []Transaction) []CategoryTotal {
	var categories []string
	var amounts []decimal.Decimal
	for _, tx := range txs {
		if tx.Type == Expense {
			categories = append(categories, tx.Category)
			amounts = append(amounts, tx.Amount)
		}
	}
	return breakdown(categories, amounts)
}

// HoldingsByCategory sums holdings per category, largest first.
func HoldingsByCategory(hs []Holding) []CategoryTotal {
	categories := make([]string, len(hs))
	amounts := make([]decimal.Decimal, len(hs))
	for i, h := range hs {
		categories[i] = h.Category
		amounts[i] = h.Amount
	}
	return breakdown(categories, amounts)
}

// FilterWindow keeps the transactions whose date falls within the window
// resolved as of asOf, boundaries included. AllTime keeps everything.
func FilterWindow(txs []Transaction, w Window, asOf Date) []Transaction {
	r, bounded := w.Range(asOf)
	if !bounded {
		return txs
	}
	var kept []Transaction
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			kept = append(kept, tx)
		}
	}
	return kept
}

// FilterType keeps the transactions of the given type.
func FilterType(txs []Transaction, t TransactionType) []Transaction {
	var kept []Transaction
	for _, tx := range txs {
		if tx.Type == t {
			kept = append(kept, tx)
		}
	}
	return kept
}

// SearchByDescription keeps the transactions whose description contains query,
// case-insensitively. An empty query keeps everything.
func SearchByDescription(txs []Transaction, query string) []Transaction {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return txs
	}
	var kept []Transaction
	for _, tx := range txs {
		if strings.Contains(strings.ToLower(tx.Description), query) {
			kept = append(kept, tx)
		}
	}
	return kept
}

// Worth holds the asset and liability totals and their difference.
type Worth struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Net         decimal.Decimal
}

// NetWorth computes the total asset value, total liability value and their
// difference.
func NetWorth(assets, liabilities []Holding) Worth {
	var w Worth
	for _, a := range assets {
		w.Assets = w.Assets.Add(a.Amount)
	}
	for _, l := range liabilities {
		w.Liabilities = w.Liabilities.Add(l.Amount)
	}
	w.Net = w.Assets.Sub(w.Liabilities)
	return w
}

// ExpenseStats summarizes a set of expense transactions.
type ExpenseStats struct {
	Count   int
	Total   decimal.Decimal
	Average decimal.Decimal
}

// SpendingStats computes the count, total and average of the expense
// transactions in txs. Income transactions are ignored.
func SpendingStats(txs []Transaction) ExpenseStats {
	var s ExpenseStats
	for _, tx := range txs {
		if tx.Type == Expense {
			s.Count++
			s.Total = s.Total.Add(tx.Amount)
		}
	}
	if s.Count > 0 {
		s.Average = s.Total.Div(decimal.NewFromInt(int64(s.Count)))
	}
	return s
}
