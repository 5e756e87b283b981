// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fingrow"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application.
// A main package iterates over it to register them all.
var Commands = []subcommands.Command{
	&addCmd{},
	&txCmd{},
	&editCmd{},
	&deleteCmd{},
	&dashboardCmd{},
	&expensesCmd{},
	&budgetCmd{},
	&goalCmd{},
	&currencyCmd{},
	&networthCmd{},
	newAssetCmd(),
	newLiabilityCmd(),
	&recordCmd{},
	&recordsCmd{},
	&advisorCmd{},
	&investCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the data directory")

func defaultDataDir() string {
	if dir := os.Getenv("FINGROW_DATA"); dir != "" {
		return dir
	}
	return ".fingrow"
}

// openLedger is the central function to open the ledger from the app data directory.
func openLedger() (*fingrow.Ledger, error) {
	store, err := fingrow.OpenStore(*dataDir)
	if err != nil {
		return nil, fmt.Errorf("could not open data directory %q: %w", *dataDir, err)
	}
	return fingrow.OpenLedger(store), nil
}

// printMarkdown renders markdown for the terminal and prints it to stdout.
// When rendering fails the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
