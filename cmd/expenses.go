package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fingrow"
	"github.com/etnz/fingrow/renderer"
	"github.com/google/subcommands"
)

// expensesCmd holds the flags for the 'expenses' subcommand.
type expensesCmd struct {
	window string
	query  string
	date   string
	trend  string
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "display a windowed expense report" }
func (*expensesCmd) Usage() string {
	return `fingrow expenses [-w <window>] [-q <query>] [-d <date>] [-g <daily|monthly>]

  Displays the expense statistics, category breakdown, spending trend and
  matching transactions for the given window.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "this-month", "Date window. See 'fingrow topic windows'.")
	f.StringVar(&c.query, "q", "", "Keep only descriptions containing this text.")
	f.StringVar(&c.date, "d", fingrow.Today().String(), "Reference date the window is resolved against.")
	f.StringVar(&c.trend, "g", "daily", "Trend granularity, daily or monthly.")
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := fingrow.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := fingrow.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	trend, err := fingrow.ParsePeriod(c.trend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if trend != fingrow.Daily && trend != fingrow.Monthly {
		fmt.Fprintf(os.Stderr, "Error: cannot chart spending per %s, use daily or monthly.\n", trend.Name())
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	r := renderer.NewExpenseReport(ledger.Transactions(), window, c.query, ledger.Currency(), on, trend)
	printMarkdown(renderer.RenderExpenses(r))
	return subcommands.ExitSuccess
}
