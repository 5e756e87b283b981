package fingrow

import "slices"

// The category lists are fixed in the UI but deliberately not enforced at the
// data layer: an item keeps its category even if the list changes.

var ExpenseCategories = []string{
	"Housing",
	"Transportation",
	"Food",
	"Utilities",
	"Healthcare",
	"Personal",
	"Entertainment",
	"Debt",
	"Other",
}

var IncomeCategories = []string{
	"Salary",
	"Freelance",
	"Investment",
	"Bonus",
	"Other",
}

var AssetCategories = []string{
	"Cash & Savings",
	"Investments",
	"Real Estate",
	"Vehicles",
	"Retirement",
	"Other",
}

var LiabilityCategories = []string{
	"Credit Card Debt",
	"Mortgage",
	"Student Loan",
	"Auto Loan",
	"Personal Loan",
	"Other",
}

// Categories returns the category list matching a transaction type.
func Categories(t TransactionType) []string {
	if t == Income {
		return slices.Clone(IncomeCategories)
	}
	return slices.Clone(ExpenseCategories)
}
