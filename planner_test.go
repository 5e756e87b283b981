package fingrow

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewPlan(t *testing.T) {
	asOf := MustParseDate("2024-03-10")
	txs := []Transaction{
		tx(Income, "Salary", "2024-02-15", 3000), // previous calendar month
		tx(Income, "Salary", "2024-03-01", 2800), // current month, not projected
		tx(Income, "Salary", "2024-01-15", 2500), // too old
		tx(Expense, "Food", "2024-03-05", 200),
		tx(Expense, "Food", "2023-11-05", 100), // spending is lifetime
	}
	budgets := []Budget{
		{Category: "Food", Limit: decimal.NewFromInt(400)},
		{Category: "Housing", Limit: decimal.NewFromInt(1800)},
	}
	goal := decimal.NewFromInt(500)

	p := NewPlan(txs, budgets, goal, asOf)

	if want := decimal.NewFromInt(3000); !p.ProjectedIncome.Equal(want) {
		t.Errorf("ProjectedIncome = %s, want %s", p.ProjectedIncome, want)
	}
	if want := decimal.NewFromInt(2500); !p.AvailableToSpend.Equal(want) {
		t.Errorf("AvailableToSpend = %s, want %s", p.AvailableToSpend, want)
	}
	if want := decimal.NewFromInt(2200); !p.TotalBudgeted.Equal(want) {
		t.Errorf("TotalBudgeted = %s, want %s", p.TotalBudgeted, want)
	}
	if want := decimal.NewFromInt(300); !p.SurplusOrDeficit.Equal(want) {
		t.Errorf("SurplusOrDeficit = %s, want %s", p.SurplusOrDeficit, want)
	}

	if len(p.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(p.Categories))
	}
	food := p.Categories[0]
	if food.Category != "Food" {
		t.Fatalf("Categories[0] = %q, want Food", food.Category)
	}
	if want := decimal.NewFromInt(300); !food.Spent.Equal(want) {
		t.Errorf("Food.Spent = %s, want %s", food.Spent, want)
	}
	if want := decimal.NewFromInt(100); !food.Remaining.Equal(want) {
		t.Errorf("Food.Remaining = %s, want %s", food.Remaining, want)
	}
	if want := Percent(75); !food.Progress.Equal(want) {
		t.Errorf("Food.Progress = %s, want %s", food.Progress, want)
	}
}

// TestPlanOverspend checks the display clamp and the negative remaining when a
// category exceeds its limit.
func TestPlanOverspend(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "Food", "2024-03-05", 600),
	}
	budgets := []Budget{{Category: "Food", Limit: decimal.NewFromInt(400)}}

	p := NewPlan(txs, budgets, decimal.Zero, MustParseDate("2024-03-10"))

	food := p.Categories[0]
	if want := Percent(100); !food.Progress.Equal(want) {
		t.Errorf("Progress = %s, want %s (clamped)", food.Progress, want)
	}
	if want := decimal.NewFromInt(-200); !food.Remaining.Equal(want) {
		t.Errorf("Remaining = %s, want %s", food.Remaining, want)
	}
}

func TestPlanZeroLimit(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "Food", "2024-03-05", 50),
	}
	budgets := []Budget{{Category: "Food", Limit: decimal.Zero}}

	p := NewPlan(txs, budgets, decimal.Zero, MustParseDate("2024-03-10"))

	food := p.Categories[0]
	if !food.Progress.Equal(Percent(0)) {
		t.Errorf("Progress = %s, want 0 for a zero limit", food.Progress)
	}
	if want := decimal.NewFromInt(-50); !food.Remaining.Equal(want) {
		t.Errorf("Remaining = %s, want %s", food.Remaining, want)
	}
}

func TestPlanDeficit(t *testing.T) {
	// No income at all: every budget is a deficit.
	budgets := DefaultBudgets()
	p := NewPlan(nil, budgets, decimal.NewFromInt(500), MustParseDate("2024-03-10"))

	if !p.SurplusOrDeficit.IsNegative() {
		t.Errorf("SurplusOrDeficit = %s, want negative", p.SurplusOrDeficit)
	}
}

func TestEstimateSavings(t *testing.T) {
	s := EstimateSavings(decimal.NewFromInt(3000), decimal.NewFromInt(2100))

	if want := decimal.NewFromInt(900); !s.Monthly.Equal(want) {
		t.Errorf("Monthly = %s, want %s", s.Monthly, want)
	}
	if want := decimal.NewFromInt(10800); !s.Annual.Equal(want) {
		t.Errorf("Annual = %s, want %s", s.Annual, want)
	}

	// Expenses above income are allowed, the potential is just negative.
	s = EstimateSavings(decimal.NewFromInt(1000), decimal.NewFromInt(1500))
	if want := decimal.NewFromInt(-500); !s.Monthly.Equal(want) {
		t.Errorf("Monthly = %s, want %s", s.Monthly, want)
	}
}
