package fingrow

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

// tx is a test helper building a transaction.
func tx(kind TransactionType, category, date string, amount float64) Transaction {
	return Transaction{
		ID:          newID(),
		Description: category + " " + date,
		Amount:      decimal.NewFromFloat(amount),
		Type:        kind,
		Category:    category,
		Date:        MustParseDate(date),
	}
}

func TestSumTotals(t *testing.T) {
	txs := []Transaction{
		tx(Income, "Salary", "2024-03-01", 3000),
		tx(Expense, "Food", "2024-03-02", 120.50),
		tx(Expense, "Housing", "2024-03-03", 800),
		tx(Income, "Bonus", "2024-03-04", 0.10),
	}

	got := SumTotals(txs)

	if want := decimal.NewFromFloat(3000.10); !got.Income.Equal(want) {
		t.Errorf("Income = %s, want %s", got.Income, want)
	}
	if want := decimal.NewFromFloat(920.50); !got.Expenses.Equal(want) {
		t.Errorf("Expenses = %s, want %s", got.Expenses, want)
	}
	// The balance is exactly the income minus the expenses, no float drift.
	if want := decimal.NewFromFloat(2079.60); !got.Balance.Equal(want) {
		t.Errorf("Balance = %s, want %s", got.Balance, want)
	}
}

func TestAverageDailySpend(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "Food", "2024-03-01", 30),
		tx(Expense, "Food", "2024-03-10", 70),
		tx(Expense, "Food", "2024-02-28", 1000), // outside the month
		tx(Income, "Salary", "2024-03-05", 3000),
	}

	got := AverageDailySpend(txs, MustParseDate("2024-03-10"))
	if want := decimal.NewFromInt(10); !got.Equal(want) {
		t.Errorf("AverageDailySpend = %s, want %s", got, want)
	}

	if got := AverageDailySpend(nil, MustParseDate("2024-03-10")); !got.IsZero() {
		t.Errorf("AverageDailySpend(no txs) = %s, want 0", got)
	}
}

func TestMonthlySeries(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "Food", "2024-03-10", 50),
		tx(Income, "Salary", "2024-03-01", 3000),
		tx(Expense, "Food", "2023-03-15", 70), // same month name, previous year
		tx(Income, "Salary", "2024-01-01", 2800),
	}

	got := MonthlySeries(txs)

	labels := make([]string, len(got))
	for i, p := range got {
		labels[i] = p.Label()
	}
	// Chronological and year-qualified: the two Marches do not collapse.
	want := []string{"Mar 2023", "Jan 2024", "Mar 2024"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	if !got[2].Income.Equal(decimal.NewFromInt(3000)) || !got[2].Expenses.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Mar 2024 = %s/%s, want 3000/50", got[2].Income, got[2].Expenses)
	}
}

func TestDailySeries(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "Food", "2024-03-10", 30),
		tx(Expense, "Transportation", "2024-03-10", 20),
		tx(Expense, "Food", "2024-03-02", 15),
		tx(Income, "Salary", "2024-03-01", 3000), // income never appears
	}

	got := DailySeries(txs)

	want := []DayPoint{
		{Date: MustParseDate("2024-03-02"), Total: decimal.NewFromInt(15)},
		{Date: MustParseDate("2024-03-10"), Total: decimal.NewFromInt(50)},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Date != want[i].Date || !got[i].Total.Equal(want[i].Total) {
			t.Errorf("series[%d] = %v %s, want %v %s", i, got[i].Date, got[i].Total, want[i].Date, want[i].Total)
		}
	}
}

func TestExpensesByCategory(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "Food", "2024-03-01", 100),
		tx(Expense, "Housing", "2024-03-02", 800),
		tx(Expense, "Food", "2024-03-03", 50),
		tx(Expense, "Entertainment", "2024-03-04", 150), // ties with Food
		tx(Income, "Salary", "2024-03-05", 3000),
	}

	got := ExpensesByCategory(txs)

	// Descending by total; the Food/Entertainment tie keeps encounter order.
	categories := make([]string, len(got))
	var sum decimal.Decimal
	for i, c := range got {
		categories[i] = c.Category
		sum = sum.Add(c.Total)
	}
	want := []string{"Housing", "Food", "Entertainment"}
	if !reflect.DeepEqual(categories, want) {
		t.Fatalf("categories = %v, want %v", categories, want)
	}

	// Conservation: the breakdown sums back to the expense total.
	if total := SumTotals(txs).Expenses; !sum.Equal(total) {
		t.Errorf("breakdown sum = %s, want %s", sum, total)
	}
}

func TestFilterWindow(t *testing.T) {
	asOf := MustParseDate("2024-03-15")
	txs := []Transaction{
		tx(Expense, "Food", "2024-03-31", 1),
		tx(Expense, "Food", "2024-03-01", 2),
		tx(Expense, "Food", "2024-02-29", 3),
		tx(Expense, "Food", "2023-12-31", 4),
	}

	if got := FilterWindow(txs, ThisMonth, asOf); len(got) != 2 {
		t.Errorf("this-month kept %d transactions, want 2", len(got))
	}
	if got := FilterWindow(txs, LastMonth, asOf); len(got) != 1 {
		t.Errorf("last-month kept %d transactions, want 1", len(got))
	}
	if got := FilterWindow(txs, LastThreeMonths, asOf); len(got) != 3 {
		t.Errorf("last-3-months kept %d transactions, want 3", len(got))
	}
	if got := FilterWindow(txs, AllTime, asOf); len(got) != len(txs) {
		t.Errorf("all-time kept %d transactions, want %d", len(got), len(txs))
	}
}

func TestSearchByDescription(t *testing.T) {
	txs := []Transaction{
		{ID: "1", Description: "Grocery shopping"},
		{ID: "2", Description: "Movie tickets"},
		{ID: "3", Description: "More groceries"},
	}

	got := SearchByDescription(txs, "GROCER")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("SearchByDescription = %v, want transactions 1 and 3", got)
	}

	if got := SearchByDescription(txs, "  "); len(got) != len(txs) {
		t.Errorf("blank query kept %d transactions, want all %d", len(got), len(txs))
	}
}

func TestNetWorth(t *testing.T) {
	assets := []Holding{
		{Amount: decimal.NewFromInt(10000), Category: "Cash"},
		{Amount: decimal.NewFromInt(5000), Category: "Investments"},
	}
	liabilities := []Holding{
		{Amount: decimal.NewFromInt(3000), Category: "Loan"},
	}

	got := NetWorth(assets, liabilities)
	if !got.Assets.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("Assets = %s, want 15000", got.Assets)
	}
	if !got.Liabilities.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("Liabilities = %s, want 3000", got.Liabilities)
	}
	if !got.Net.Equal(decimal.NewFromInt(12000)) {
		t.Errorf("Net = %s, want 12000", got.Net)
	}
}

func TestSpendingStats(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "Food", "2024-03-01", 30),
		tx(Expense, "Food", "2024-03-02", 60),
		tx(Income, "Salary", "2024-03-03", 3000),
	}

	got := SpendingStats(txs)
	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if !got.Total.Equal(decimal.NewFromInt(90)) {
		t.Errorf("Total = %s, want 90", got.Total)
	}
	if !got.Average.Equal(decimal.NewFromInt(45)) {
		t.Errorf("Average = %s, want 45", got.Average)
	}

	if got := SpendingStats(nil); !got.Average.IsZero() {
		t.Errorf("empty Average = %s, want 0", got.Average)
	}
}
