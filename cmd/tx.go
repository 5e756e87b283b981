package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/fingrow"
	"github.com/etnz/fingrow/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	window string
	kind   string
	query  string
	head   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `fingrow tx [-w <window>] [-t <income|expense>] [-q <query>] [-head <n>]

  Lists transactions, newest first, with options for filtering and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "all-time", "Date window. See 'fingrow topic windows'.")
	f.StringVar(&c.kind, "t", "", "Keep only this transaction type.")
	f.StringVar(&c.query, "q", "", "Keep only descriptions containing this text.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := fingrow.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var filters []func(fingrow.Transaction) bool
	if c.kind != "" {
		kind, err := fingrow.ParseTransactionType(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, fingrow.ByType(kind))
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs := slices.Collect(ledger.AllTransactions(filters...))
	txs = fingrow.FilterWindow(txs, window, fingrow.Today())
	txs = fingrow.SearchByDescription(txs, c.query)
	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}

	table := renderer.NewTransactionTable("Transactions", txs, ledger.Currency())
	printMarkdown(renderer.RenderTransactions(table))
	return subcommands.ExitSuccess
}
