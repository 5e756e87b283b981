package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fingrow"
	"github.com/etnz/fingrow/renderer"
	"github.com/google/subcommands"
)

// recordCmd holds the flags for the 'record' subcommand.
type recordCmd struct {
	id string
	rm string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "add, edit or delete a note" }
func (*recordCmd) Usage() string {
	return `fingrow record <title> [<content>...]
fingrow record -id <id> <title> [<content>...]
fingrow record -rm <id>

  Adds a note (or replaces one when -id is given). Notes are stamped with the
  current time; they cannot be back-dated. With -rm, deletes one.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the record to replace.")
	f.StringVar(&c.rm, "rm", "", "Id of the record to delete.")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.rm != "" {
		if err := ledger.DeleteRecord(c.rm); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting record %q: %v\n", c.rm, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted record %s\n", c.rm)
		return subcommands.ExitSuccess
	}

	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: want at least a title.")
		return subcommands.ExitUsageError
	}

	r := fingrow.Record{
		ID:      c.id,
		Title:   f.Arg(0),
		Content: strings.Join(f.Args()[1:], " "),
	}

	if c.id != "" {
		if err := ledger.UpdateRecord(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating record: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Updated record %s\n", c.id)
		return subcommands.ExitSuccess
	}

	r, err = ledger.AddRecord(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding record: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added record %q (%s)\n", r.Title, r.ID)
	return subcommands.ExitSuccess
}

type recordsCmd struct{}

func (*recordsCmd) Name() string     { return "records" }
func (*recordsCmd) Synopsis() string { return "list all notes" }
func (*recordsCmd) Usage() string {
	return `fingrow records

  Lists all notes, newest first.
`
}

func (c *recordsCmd) SetFlags(f *flag.FlagSet) {}

func (c *recordsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderRecords(renderer.NewRecordList(ledger.Records())))
	return subcommands.ExitSuccess
}
