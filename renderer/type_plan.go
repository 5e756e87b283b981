package renderer

import (
	"github.com/etnz/fingrow"
)

// PlanReport is the view model of the budget plan report.
type PlanReport struct {
	Date fingrow.Date `json:"date"`

	ProjectedIncome  fingrow.Money `json:"projectedIncome"`
	Goal             fingrow.Money `json:"goal"`
	AvailableToSpend fingrow.Money `json:"availableToSpend"`
	TotalBudgeted    fingrow.Money `json:"totalBudgeted"`
	SurplusOrDeficit fingrow.Money `json:"surplusOrDeficit"`
	// Deficit is true when the budgets overcommit the projected income.
	Deficit bool `json:"deficit"`

	Categories []BudgetRow `json:"categories"`
}

// BudgetRow is one category of the budget progress table.
type BudgetRow struct {
	Category  string          `json:"category"`
	Limit     fingrow.Money   `json:"limit"`
	Spent     fingrow.Money   `json:"spent"`
	Remaining fingrow.Money   `json:"remaining"`
	Progress  fingrow.Percent `json:"progress"`
}

// NewPlanReport creates a PlanReport view from a computed plan.
func NewPlanReport(p fingrow.Plan, currency string) *PlanReport {
	r := &PlanReport{
		Date:             p.AsOf,
		ProjectedIncome:  fingrow.M(p.ProjectedIncome, currency),
		Goal:             fingrow.M(p.Goal, currency),
		AvailableToSpend: fingrow.M(p.AvailableToSpend, currency),
		TotalBudgeted:    fingrow.M(p.TotalBudgeted, currency),
		SurplusOrDeficit: fingrow.M(p.SurplusOrDeficit, currency),
		Deficit:          p.SurplusOrDeficit.IsNegative(),
	}
	for _, c := range p.Categories {
		r.Categories = append(r.Categories, BudgetRow{
			Category:  c.Category,
			Limit:     fingrow.M(c.Limit, currency),
			Spent:     fingrow.M(c.Spent, currency),
			Remaining: fingrow.M(c.Remaining, currency),
			Progress:  c.Progress,
		})
	}
	return r
}

// SavingsReport is the view model of the savings calculator output.
type SavingsReport struct {
	MonthlyIncome   fingrow.Money `json:"monthlyIncome"`
	MonthlyExpenses fingrow.Money `json:"monthlyExpenses"`
	Monthly         fingrow.Money `json:"monthly"`
	Annual          fingrow.Money `json:"annual"`
}

// NewSavingsReport creates a SavingsReport view from a savings estimate.
func NewSavingsReport(s fingrow.Savings, currency string) *SavingsReport {
	return &SavingsReport{
		MonthlyIncome:   fingrow.M(s.MonthlyIncome, currency),
		MonthlyExpenses: fingrow.M(s.MonthlyExpenses, currency),
		Monthly:         fingrow.M(s.Monthly, currency),
		Annual:          fingrow.M(s.Annual, currency),
	}
}
