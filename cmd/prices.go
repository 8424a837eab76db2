package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/TheAlakazam/file2fa/yahoo"
	"github.com/google/subcommands"
)

type pricesCmd struct{}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "show trailing-year price extremes for a ticker" }
func (*pricesCmd) Usage() string {
	return `f2fa prices <ticker>

  Fetches the trailing year of daily prices from Yahoo Finance and prints
  the peak price and the December 31 close used in Schedule FA valuation.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one ticker symbol")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	client := &yahoo.Client{}
	summary, err := client.PeakAndYearEnd(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch prices for %q: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Peak (1y):     %s\n", summary.Peak.StringFixed(2))
	if summary.YearEnd.IsZero() {
		fmt.Println("Dec 31 close:  not in window")
	} else {
		fmt.Printf("Dec 31 close:  %s\n", summary.YearEnd.StringFixed(2))
	}
	return subcommands.ExitSuccess
}
