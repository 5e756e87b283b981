package fingrow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// openTestLedger creates a ledger over a throwaway store.
func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return OpenLedger(store)
}

func TestOpenLedgerDefaults(t *testing.T) {
	l := openTestLedger(t)

	if len(l.Transactions()) != 0 {
		t.Errorf("fresh ledger has %d transactions, want 0", len(l.Transactions()))
	}
	if got := l.Currency(); got != DefaultCurrency {
		t.Errorf("Currency() = %q, want %q", got, DefaultCurrency)
	}
	if got := l.FinancialGoal(); !got.Equal(DefaultFinancialGoal) {
		t.Errorf("FinancialGoal() = %s, want %s", got, DefaultFinancialGoal)
	}
	budgets := l.Budgets()
	if len(budgets) != len(ExpenseCategories) {
		t.Fatalf("fresh ledger has %d budgets, want %d", len(budgets), len(ExpenseCategories))
	}
	for _, b := range budgets {
		if !b.Limit.Equal(DefaultBudgetLimit) {
			t.Errorf("budget %s limit = %s, want %s", b.Category, b.Limit, DefaultBudgetLimit)
		}
	}
}

func TestAddThenDelete(t *testing.T) {
	l := openTestLedger(t)

	kept, err := l.AddTransaction(tx(Expense, "Food", "2024-03-01", 50))
	if err != nil {
		t.Fatal(err)
	}
	added, err := l.AddTransaction(tx(Expense, "Food", "2024-03-02", 70))
	if err != nil {
		t.Fatal(err)
	}

	if err := l.DeleteTransaction(added.ID); err != nil {
		t.Fatal(err)
	}

	got := l.Transactions()
	if len(got) != 1 || got[0].ID != kept.ID {
		t.Errorf("after add-then-delete, ledger = %v, want only %s", got, kept.ID)
	}
}

func TestSortInvariant(t *testing.T) {
	l := openTestLedger(t)

	// Insert out of order; reads must come back newest first.
	for _, date := range []string{"2024-03-01", "2024-03-10", "2024-02-15", "2024-03-05"} {
		if _, err := l.AddTransaction(tx(Expense, "Food", date, 10)); err != nil {
			t.Fatal(err)
		}
	}

	got := l.Transactions()
	for i := 1; i < len(got); i++ {
		if got[i].Date.After(got[i-1].Date) {
			t.Fatalf("transactions out of order at %d: %v after %v", i, got[i].Date, got[i-1].Date)
		}
	}

	// Updating a date re-sorts.
	moved := got[len(got)-1]
	moved.Date = MustParseDate("2024-03-20")
	if err := l.UpdateTransaction(moved); err != nil {
		t.Fatal(err)
	}
	if got := l.Transactions(); got[0].ID != moved.ID {
		t.Errorf("after update, first transaction = %s, want %s", got[0].ID, moved.ID)
	}
}

func TestAllTransactions(t *testing.T) {
	l := openTestLedger(t)
	for _, k := range []TransactionType{Income, Expense, Expense} {
		if _, err := l.AddTransaction(tx(k, "Other", "2024-03-01", 10)); err != nil {
			t.Fatal(err)
		}
	}

	count := 0
	for range l.AllTransactions(ByType(Expense)) {
		count++
	}
	if count != 2 {
		t.Errorf("AllTransactions(ByType(Expense)) yielded %d, want 2", count)
	}
}

func TestUnmatchedIDsAreNoOps(t *testing.T) {
	l := openTestLedger(t)
	added, err := l.AddTransaction(tx(Expense, "Food", "2024-03-01", 50))
	if err != nil {
		t.Fatal(err)
	}

	ghost := added
	ghost.ID = "no-such-id"
	ghost.Description = "should not land anywhere"
	if err := l.UpdateTransaction(ghost); err != nil {
		t.Fatal(err)
	}
	if err := l.DeleteTransaction("another-missing-id"); err != nil {
		t.Fatal(err)
	}

	got := l.Transactions()
	if len(got) != 1 || got[0].Description != added.Description {
		t.Errorf("collection changed by unmatched ids: %v", got)
	}
}

func TestValidationRejects(t *testing.T) {
	l := openTestLedger(t)

	tests := []struct {
		name string
		tx   Transaction
	}{
		{"missing description", Transaction{Amount: decimal.NewFromInt(10), Type: Expense, Category: "Food"}},
		{"negative amount", Transaction{Description: "x", Amount: decimal.NewFromInt(-10), Type: Expense, Category: "Food"}},
		{"unknown type", Transaction{Description: "x", Amount: decimal.NewFromInt(10), Type: "transfer", Category: "Food"}},
		{"missing category", Transaction{Description: "x", Amount: decimal.NewFromInt(10), Type: Expense}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.AddTransaction(tt.tx); err == nil {
				t.Error("AddTransaction() accepted an invalid transaction")
			}
		})
	}
	if len(l.Transactions()) != 0 {
		t.Errorf("rejected transactions reached the collection: %v", l.Transactions())
	}
}

func TestZeroDateDefaultsToToday(t *testing.T) {
	l := openTestLedger(t)
	added, err := l.AddTransaction(Transaction{
		Description: "no date given",
		Amount:      decimal.NewFromInt(10),
		Type:        Expense,
		Category:    "Food",
	})
	if err != nil {
		t.Fatal(err)
	}
	if added.Date != Today() {
		t.Errorf("Date = %v, want today %v", added.Date, Today())
	}
}

func TestRecordDateIsAlwaysNow(t *testing.T) {
	l := openTestLedger(t)

	clock := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	added, err := l.AddRecord(Record{Title: "note", Date: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatal(err)
	}
	if !added.Date.Equal(clock) {
		t.Errorf("AddRecord date = %v, want %v (caller-supplied date overridden)", added.Date, clock)
	}

	clock = clock.Add(24 * time.Hour)
	added.Title = "edited"
	added.Date = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := l.UpdateRecord(added); err != nil {
		t.Fatal(err)
	}
	got := l.Records()
	if len(got) != 1 || !got[0].Date.Equal(clock) {
		t.Errorf("UpdateRecord date = %v, want %v", got[0].Date, clock)
	}
}

func TestUpdateBudgetLimitGuards(t *testing.T) {
	l := openTestLedger(t)

	// A negative limit is silently ignored.
	if err := l.UpdateBudgetLimit("Food", decimal.NewFromInt(-10)); err != nil {
		t.Fatal(err)
	}
	for _, b := range l.Budgets() {
		if b.Category == "Food" && !b.Limit.Equal(DefaultBudgetLimit) {
			t.Errorf("Food limit = %s, want untouched %s", b.Limit, DefaultBudgetLimit)
		}
	}

	// So is an unknown category.
	if err := l.UpdateBudgetLimit("Yachts", decimal.NewFromInt(100)); err != nil {
		t.Fatal(err)
	}
	if len(l.Budgets()) != len(ExpenseCategories) {
		t.Errorf("unknown category created a budget entry")
	}

	// A valid update lands.
	if err := l.UpdateBudgetLimit("Food", decimal.NewFromInt(650)); err != nil {
		t.Fatal(err)
	}
	for _, b := range l.Budgets() {
		if b.Category == "Food" && !b.Limit.Equal(decimal.NewFromInt(650)) {
			t.Errorf("Food limit = %s, want 650", b.Limit)
		}
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	l := OpenLedger(store)

	added, err := l.AddTransaction(tx(Income, "Salary", "2024-03-01", 3000))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.SetCurrency("USD"); err != nil {
		t.Fatal(err)
	}
	if err := l.UpdateFinancialGoal(decimal.NewFromInt(750)); err != nil {
		t.Fatal(err)
	}

	// A second ledger over the same directory sees everything.
	store2, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	back := OpenLedger(store2)

	got := back.Transactions()
	if len(got) != 1 || got[0].ID != added.ID || !got[0].Amount.Equal(added.Amount) {
		t.Errorf("reloaded transactions = %v, want %v", got, added)
	}
	if back.Currency() != "USD" {
		t.Errorf("reloaded currency = %q, want USD", back.Currency())
	}
	if !back.FinancialGoal().Equal(decimal.NewFromInt(750)) {
		t.Errorf("reloaded goal = %s, want 750", back.FinancialGoal())
	}
}
