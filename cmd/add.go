package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/fingrow"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	kind     string
	category string
	date     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `fingrow add -t <income|expense> -c <category> [-d <date>] <description> <amount>

  Records a new transaction. The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "expense", "Transaction type, income or expense.")
	f.StringVar(&c.category, "c", "", "Transaction category. See 'fingrow topic categories'.")
	f.StringVar(&c.date, "d", "", "Transaction date. See 'fingrow topic dates'.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: want exactly a description and an amount.")
		return subcommands.ExitUsageError
	}

	kind, err := fingrow.ParseTransactionType(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	categories := fingrow.Categories(kind)
	if !slices.Contains(categories, c.category) {
		fmt.Fprintf(os.Stderr, "Error: unknown %s category %q, want one of: %s\n", kind, c.category, strings.Join(categories, ", "))
		return subcommands.ExitUsageError
	}

	amount, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	var date fingrow.Date
	if c.date != "" {
		date, err = fingrow.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.AddTransaction(fingrow.Transaction{
		Description: f.Arg(0),
		Amount:      amount,
		Type:        kind,
		Category:    c.category,
		Date:        date,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s %q %s (%s) on %s\n", tx.Type, tx.Description, ledger.Money(tx.Amount), tx.ID, tx.Date)
	return subcommands.ExitSuccess
}
