package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fingrow"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	description string
	amount      string
	kind        string
	category    string
	date        string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing transaction" }
func (*editCmd) Usage() string {
	return `fingrow edit [-desc <description>] [-a <amount>] [-t <type>] [-c <category>] [-d <date>] <id>

  Replaces the given fields of the transaction with the given id.
  Fields not given keep their current value.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "New description.")
	f.StringVar(&c.amount, "a", "", "New amount.")
	f.StringVar(&c.kind, "t", "", "New type, income or expense.")
	f.StringVar(&c.category, "c", "", "New category.")
	f.StringVar(&c.date, "d", "", "New date.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var tx fingrow.Transaction
	found := false
	for _, t := range ledger.Transactions() {
		if t.ID == id {
			tx, found = t, true
			break
		}
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %q\n", id)
		return subcommands.ExitFailure
	}

	if c.description != "" {
		tx.Description = c.description
	}
	if c.amount != "" {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
			return subcommands.ExitUsageError
		}
		tx.Amount = amount
	}
	if c.kind != "" {
		kind, err := fingrow.ParseTransactionType(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Type = kind
	}
	if c.category != "" {
		tx.Category = c.category
	}
	if c.date != "" {
		date, err := fingrow.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Date = date
	}

	if err := ledger.UpdateTransaction(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated transaction %s\n", id)
	return subcommands.ExitSuccess
}
