package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type goalCmd struct{}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "show or set the monthly savings goal" }
func (*goalCmd) Usage() string {
	return `fingrow goal [<amount>]

  Without argument, shows the current monthly savings goal.
  With an amount, replaces it. Negative amounts are ignored.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Printf("Monthly savings goal: %s\n", ledger.Money(ledger.FinancialGoal()))
		return subcommands.ExitSuccess
	}

	goal, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	if err := ledger.UpdateFinancialGoal(goal); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating goal: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Monthly savings goal: %s\n", ledger.Money(ledger.FinancialGoal()))
	return subcommands.ExitSuccess
}
