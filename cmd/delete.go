package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete transactions by id" }
func (*deleteCmd) Usage() string {
	return `fingrow delete <id>...

  Deletes the transactions with the given ids. Unknown ids are ignored.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: want at least one transaction id.")
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, id := range f.Args() {
		if err := ledger.DeleteTransaction(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting transaction %q: %v\n", id, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Deleted %d transaction(s)\n", f.NArg())
	return subcommands.ExitSuccess
}
