package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fingrow"
	"github.com/etnz/fingrow/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	set      string
	limit    string
	income   string
	expenses string
	date     string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "display the budget plan or set a category limit" }
func (*budgetCmd) Usage() string {
	return `fingrow budget [-d <date>]
fingrow budget -set <category> -limit <amount>
fingrow budget -income <amount> -expenses <amount>

  Without flags, displays the budget plan: projected income, savings goal,
  available amount and per-category progress.
  With -set and -limit, replaces the monthly limit of a category.
  With -income and -expenses, estimates the savings potential.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Category whose limit to replace.")
	f.StringVar(&c.limit, "limit", "", "New monthly limit for the category.")
	f.StringVar(&c.income, "income", "", "Estimated monthly income for the savings calculator.")
	f.StringVar(&c.expenses, "expenses", "", "Estimated monthly expenses for the savings calculator.")
	f.StringVar(&c.date, "d", fingrow.Today().String(), "Date the plan is computed for.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.set != "" || c.limit != "" {
		return c.setLimit(ledger)
	}
	if c.income != "" || c.expenses != "" {
		return c.savings(ledger)
	}

	on, err := fingrow.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	plan := fingrow.NewPlan(ledger.Transactions(), ledger.Budgets(), ledger.FinancialGoal(), on)
	printMarkdown(renderer.RenderPlan(renderer.NewPlanReport(plan, ledger.Currency())))
	return subcommands.ExitSuccess
}

func (c *budgetCmd) setLimit(ledger *fingrow.Ledger) subcommands.ExitStatus {
	if c.set == "" || c.limit == "" {
		fmt.Fprintln(os.Stderr, "Error: -set and -limit go together.")
		return subcommands.ExitUsageError
	}
	limit, err := decimal.NewFromString(c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing limit %q: %v\n", c.limit, err)
		return subcommands.ExitUsageError
	}
	if err := ledger.UpdateBudgetLimit(c.set, limit); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating budget: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Budget for %s set to %s\n", c.set, ledger.Money(limit))
	return subcommands.ExitSuccess
}

func (c *budgetCmd) savings(ledger *fingrow.Ledger) subcommands.ExitStatus {
	if c.income == "" || c.expenses == "" {
		fmt.Fprintln(os.Stderr, "Error: -income and -expenses go together.")
		return subcommands.ExitUsageError
	}
	income, err := decimal.NewFromString(c.income)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing income %q: %v\n", c.income, err)
		return subcommands.ExitUsageError
	}
	expenses, err := decimal.NewFromString(c.expenses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing expenses %q: %v\n", c.expenses, err)
		return subcommands.ExitUsageError
	}
	s := fingrow.EstimateSavings(income, expenses)
	printMarkdown(renderer.RenderSavings(renderer.NewSavingsReport(s, ledger.Currency())))
	return subcommands.ExitSuccess
}
