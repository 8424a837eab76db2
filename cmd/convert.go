package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/TheAlakazam/file2fa/renderer"
	"github.com/google/subcommands"
)

type convertCmd struct {
	openfigiKey string
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "convert a brokerage statement into Schedule FA disclosure rows"
}
func (*convertCmd) Usage() string {
	return `f2fa convert <statement.pdf|statement.csv>

  Reads a brokerage statement (E*Trade "Benefit History" PDF or a purchase
  CSV export), looks up the issuing company and its price history, resolves
  SBI TT buy exchange rates, and prints the resulting Schedule FA rows.

Usage Examples:
# Convert a benefit history statement.
$ f2fa convert BenefitHistory.pdf

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.openfigiKey, "openfigi-api-key", "", "OpenFIGI API key for company lookups. This flag takes precedence over the "+openfigiKeyEnv+" environment variable.")
}

// apiKey retrieves the OpenFIGI API key from the command-line flag or the environment variable.
// It prioritizes the flag over the environment variable.
func (c *convertCmd) apiKey() string {
	if c.openfigiKey == "" {
		c.openfigiKey = os.Getenv(openfigiKeyEnv)
	}
	return c.openfigiKey
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one statement file")
		return subcommands.ExitUsageError
	}

	pipeline := NewPipeline(c.apiKey())
	report, err := pipeline.Convert(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not convert %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ScheduleFAMarkdown(renderer.NewScheduleFA(report)))

	return subcommands.ExitSuccess
}
