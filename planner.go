package fingrow

import "github.com/shopspring/decimal"

// BudgetProgress tracks one category's spending against its monthly limit.
type BudgetProgress struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal // negative when the limit is exceeded
	Progress  Percent         // clamped to [0,100] for display
}

// Plan is the budget planner output as of a given date.
type Plan struct {
	AsOf Date

	// ProjectedIncome is the income earned over the previous full calendar
	// month, used as the estimate for the current one.
	ProjectedIncome decimal.Decimal
	Goal            decimal.Decimal
	// AvailableToSpend is the projected income minus the savings goal.
	AvailableToSpend decimal.Decimal
	TotalBudgeted    decimal.Decimal
	// SurplusOrDeficit is what remains of the available amount once every
	// budget limit is funded. Negative means the budgets overcommit the
	// projected income; that is a warning, not an error.
	SurplusOrDeficit decimal.Decimal

	Categories []BudgetProgress
}

// NewPlan computes the budget plan from the transactions, the budget limits
// and the savings goal, as of the given date.
//
// Spent amounts are lifetime sums per category, not windowed: a category's
// progress reflects everything ever spent in it.
func NewPlan(txs []Transaction, budgets []Budget, goal decimal.Decimal, asOf Date) Plan {
	p := Plan{AsOf: asOf, Goal: goal}

	lastMonth, _ := LastMonth.Range(asOf)
	for _, tx := range txs {
		if tx.Type == Income && lastMonth.Contains(tx.Date) {
			p.ProjectedIncome = p.ProjectedIncome.Add(tx.Amount)
		}
	}
	p.AvailableToSpend = p.ProjectedIncome.Sub(goal)

	spent := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type == Expense {
			spent[tx.Category] = spent[tx.Category].Add(tx.Amount)
		}
	}

	p.Categories = make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		used := spent[b.Category]
		// A zero limit has no meaningful ratio: progress stays at zero even
		// with spending, Remaining still goes negative.
		progress := Percent(0)
		if b.Limit.IsPositive() {
			ratio, _ := used.Div(b.Limit).Float64()
			progress = Percent(ratio * 100).Clamp()
		}
		p.Categories = append(p.Categories, BudgetProgress{
			Category:  b.Category,
			Limit:     b.Limit,
			Spent:     used,
			Remaining: b.Limit.Sub(used),
			Progress:  progress,
		})
		p.TotalBudgeted = p.TotalBudgeted.Add(b.Limit)
	}
	p.SurplusOrDeficit = p.AvailableToSpend.Sub(p.TotalBudgeted)
	return p
}

// Savings is the output of the savings calculator.
type Savings struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	Monthly         decimal.Decimal
	Annual          decimal.Decimal
}

// EstimateSavings projects the savings potential from estimated monthly income
// and expense figures. Annual is twelve times the monthly figure; both may be
// negative when expenses exceed income.
func EstimateSavings(monthlyIncome, monthlyExpenses decimal.Decimal) Savings {
	monthly := monthlyIncome.Sub(monthlyExpenses)
	return Savings{
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
		Monthly:         monthly,
		Annual:          monthly.Mul(decimal.NewFromInt(12)),
	}
}
