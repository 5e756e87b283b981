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

type networthCmd struct {
	date string
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "display the net worth statement" }
func (*networthCmd) Usage() string {
	return `fingrow networth [-d <date>]

  Displays the asset and liability totals, their difference and the detailed
  entries with per-category breakdowns.
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fingrow.Today().String(), "Date for the statement.")
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	r := renderer.NewNetWorthReport(ledger.Assets(), ledger.Liabilities(), ledger.Currency(), on)
	printMarkdown(renderer.RenderNetWorth(r))
	return subcommands.ExitSuccess
}
