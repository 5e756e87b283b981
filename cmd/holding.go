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

// holdingOps abstracts the asset and liability collections so that both
// commands share one implementation.
type holdingOps struct {
	noun   string
	list   func(*fingrow.Ledger) []fingrow.Holding
	add    func(*fingrow.Ledger, fingrow.Holding) (fingrow.Holding, error)
	update func(*fingrow.Ledger, fingrow.Holding) error
	delete func(*fingrow.Ledger, string) error
}

// holdingCmd holds the flags shared by the 'asset' and 'liability' subcommands.
type holdingCmd struct {
	ops      holdingOps
	id       string
	rm       string
	category string
	date     string
}

func (c *holdingCmd) Name() string { return c.ops.noun }
func (c *holdingCmd) Synopsis() string {
	return fmt.Sprintf("list, add, edit or delete %s entries", c.ops.noun)
}
func (c *holdingCmd) Usage() string {
	return fmt.Sprintf(`fingrow %[1]s
fingrow %[1]s [-c <category>] [-d <date>] <description> <amount>
fingrow %[1]s -id <id> [-c <category>] [-d <date>] <description> <amount>
fingrow %[1]s -rm <id>

  Without arguments, lists the entries. With a description and an amount,
  adds an entry (or replaces one when -id is given). With -rm, deletes one.
`, c.ops.noun)
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the entry to replace.")
	f.StringVar(&c.rm, "rm", "", "Id of the entry to delete.")
	f.StringVar(&c.category, "c", "", "Entry category.")
	f.StringVar(&c.date, "d", "", "Valuation date, defaults to today.")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.rm != "" {
		if err := c.ops.delete(ledger, c.rm); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting %s %q: %v\n", c.ops.noun, c.rm, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted %s %s\n", c.ops.noun, c.rm)
		return subcommands.ExitSuccess
	}

	if f.NArg() == 0 {
		for _, h := range c.ops.list(ledger) {
			fmt.Printf("%s  %s  %-12s %s (%s)\n", h.ID, h.Date, h.Category, h.Description, ledger.Money(h.Amount))
		}
		return subcommands.ExitSuccess
	}

	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: want exactly a description and an amount.")
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

	h := fingrow.Holding{
		ID:          c.id,
		Description: f.Arg(0),
		Amount:      amount,
		Category:    c.category,
		Date:        date,
	}

	if c.id != "" {
		if err := c.ops.update(ledger, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating %s: %v\n", c.ops.noun, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Updated %s %s\n", c.ops.noun, c.id)
		return subcommands.ExitSuccess
	}

	h, err = c.ops.add(ledger, h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding %s: %v\n", c.ops.noun, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s %q %s (%s)\n", c.ops.noun, h.Description, ledger.Money(h.Amount), h.ID)
	return subcommands.ExitSuccess
}

func newAssetCmd() *holdingCmd {
	return &holdingCmd{ops: holdingOps{
		noun:   "asset",
		list:   (*fingrow.Ledger).Assets,
		add:    (*fingrow.Ledger).AddAsset,
		update: (*fingrow.Ledger).UpdateAsset,
		delete: (*fingrow.Ledger).DeleteAsset,
	}}
}

func newLiabilityCmd() *holdingCmd {
	return &holdingCmd{ops: holdingOps{
		noun:   "liability",
		list:   (*fingrow.Ledger).Liabilities,
		add:    (*fingrow.Ledger).AddLiability,
		update: (*fingrow.Ledger).UpdateLiability,
		delete: (*fingrow.Ledger).DeleteLiability,
	}}
}
