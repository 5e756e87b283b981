package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or set the display currency" }
func (*currencyCmd) Usage() string {
	return `fingrow currency [<code>]

  Without argument, shows the display currency.
  With a code such as NGN, USD or EUR, replaces it. Amounts are not
  converted, only re-labeled.
`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Printf("Display currency: %s\n", ledger.Currency())
		return subcommands.ExitSuccess
	}

	code := strings.ToUpper(strings.TrimSpace(f.Arg(0)))
	if err := ledger.SetCurrency(code); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting currency: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Display currency: %s\n", ledger.Currency())
	return subcommands.ExitSuccess
}
