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

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	date string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the financial dashboard" }
func (*dashboardCmd) Usage() string {
	return `fingrow dashboard [-d <date>]

  Displays the lifetime totals, the monthly overview, the spending breakdown
  and the most recent transactions.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fingrow.Today().String(), "Date for the dashboard. See 'fingrow topic dates'.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := fingrow.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	d := renderer.NewDashboard(ledger.Transactions(), ledger.Currency(), on)
	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}
