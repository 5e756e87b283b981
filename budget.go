package fingrow

import "github.com/shopspring/decimal"

// Budget is a monthly spending limit for one expense category. There is one
// entry per known expense category, created at first run and never deleted.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}

// DefaultBudgetLimit is the limit installed for every expense category at first run.
var DefaultBudgetLimit = decimal.NewFromInt(500)

// DefaultBudgets returns the initial budget collection, one entry per expense
// category with the default limit.
func DefaultBudgets() []Budget {
	budgets := make([]Budget, 0, len(ExpenseCategories))
	for _, category := range ExpenseCategories {
		budgets = append(budgets, Budget{Category: category, Limit: DefaultBudgetLimit})
	}
	return budgets
}
