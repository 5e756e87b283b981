package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/fingrow/advisor"
	"github.com/google/subcommands"
)

// advisorCmd is the subcommand for the AI financial advisor.
type advisorCmd struct{}

func (*advisorCmd) Name() string     { return "advisor" }
func (*advisorCmd) Synopsis() string { return "chat with the AI financial advisor" }
func (*advisorCmd) Usage() string {
	return `fingrow advisor [<question>...]

  Starts an interactive session with Finley, the AI financial advisor.
  Finley sees the most recent transactions. Type 'bye' to exit.
  Requires GEMINI_API_KEY.
`
}

func (*advisorCmd) SetFlags(_ *flag.FlagSet) {}

const prompt = "advisor> "

func (c *advisorCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := advisor.NewClient(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	finley, err := advisor.NewAdvisor(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	conversation := advisor.NewConversation()
	fmt.Println(advisor.Greeting)
	fmt.Println("Type 'bye' to exit.")

	prompts := []string{}
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	reader := bufio.NewReader(os.Stdin)

	// REPL loop
	for {
		fmt.Print(prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			fmt.Println(input)
		} else {
			input, err = reader.ReadString('\n')
			if err != nil {
				if errors.Is(err, io.EOF) {
					return subcommands.ExitSuccess // Clean exit on Ctrl+D
				}
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return subcommands.ExitSuccess
		}

		conversation.AddUser(input)
		slot := conversation.OpenReply()

		transactionsContext := advisor.TransactionsContext(ledger.Transactions())
		_, err := finley.Ask(ctx, transactionsContext, input, func(chunk string) {
			conversation.Append(slot, chunk)
			fmt.Print(chunk)
		})
		if err != nil {
			conversation.Fail(slot, "Sorry, I encountered an error. Please try again.")
			fmt.Println("Sorry, I encountered an error. Please try again.")
			continue
		}
		fmt.Println()
	}
}
