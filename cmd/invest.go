package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fingrow/advisor"
	"github.com/google/subcommands"
)

// investCmd is the subcommand for the grounded investment search.
type investCmd struct{}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "search investment information on the web" }
func (*investCmd) Usage() string {
	return `fingrow invest <question>...

  Answers an investment question grounded in Google Search results and lists
  the web sources of the answer. Requires GEMINI_API_KEY.
`
}

func (*investCmd) SetFlags(_ *flag.FlagSet) {}

func (c *investCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: want a question to search for.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	client, err := advisor.NewClient(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := advisor.SearchInvestments(ctx, client, query)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString(result.Text)
	if len(result.Sources) > 0 {
		b.WriteString("\n\n## Sources\n\n")
		for _, s := range result.Sources {
			fmt.Fprintf(&b, "* [%s](%s)\n", s.Title, s.URI)
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
