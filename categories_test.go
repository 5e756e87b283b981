package fingrow

import (
	"slices"
	"testing"
)

func TestCategories(t *testing.T) {
	if got := Categories(Income); !slices.Equal(got, IncomeCategories) {
		t.Errorf("Categories(Income) = %v, want %v", got, IncomeCategories)
	}
	if got := Categories(Expense); !slices.Equal(got, ExpenseCategories) {
		t.Errorf("Categories(Expense) = %v, want %v", got, ExpenseCategories)
	}

	// Callers get a copy, not the shared backing list.
	got := Categories(Expense)
	got[0] = "Yachts"
	if ExpenseCategories[0] == "Yachts" {
		t.Error("Categories() leaks the backing list")
	}
}
