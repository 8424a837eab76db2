package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearFxCacheCmd struct {
	currency string
}

func (*clearFxCacheCmd) Name() string     { return "clear-fx-cache" }
func (*clearFxCacheCmd) Synopsis() string { return "drop the cached exchange rate table for a currency" }
func (*clearFxCacheCmd) Usage() string {
	return `f2fa clear-fx-cache [-c <currency>]

  Drops the persisted exchange rate table for a currency, forcing the next
  rate lookup to fetch a fresh copy of the SBI feed.
`
}

func (c *clearFxCacheCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "USD", "Currency code whose cached table is dropped (ISO 4217).")
}

func (c *clearFxCacheCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := NewFxService().Clear(c.currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing %s cache: %v\n", c.currency, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Cleared cached %s rate table from %s\n", c.currency, *fxCacheDir)
	return subcommands.ExitSuccess
}
