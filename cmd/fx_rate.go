package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/TheAlakazam/file2fa/date"
	"github.com/TheAlakazam/file2fa/fx"
	"github.com/google/subcommands"
)

type fxRateCmd struct {
	currency string
	on       string
	purpose  string
}

func (*fxRateCmd) Name() string     { return "fx-rate" }
func (*fxRateCmd) Synopsis() string { return "resolve an SBI TT buy rate for a date" }
func (*fxRateCmd) Usage() string {
	return `f2fa fx-rate [-c <currency>] [-d <date>] [-p <purpose>]

  Resolves the SBI TT buy rate in INR for the given currency and date.
  The purpose shifts the date the rate is looked up for: "closing" uses
  December 31 of the date's year, "dividend" and "sale" use the end of the
  preceding month, "initial" and "peak" use the date as is.

Usage Examples:
# USD rate applicable to a sale on 2024-06-15.
$ f2fa fx-rate -c USD -d 2024-06-15 -p sale

`
}

func (c *fxRateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "USD", "Currency code to resolve (ISO 4217).")
	f.StringVar(&c.on, "d", date.Today().String(), "Reference date (YYYY-MM-DD).")
	f.StringVar(&c.purpose, "p", string(fx.Initial), "Lookup purpose (initial, peak, closing, dividend, sale).")
}

func (c *fxRateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	purpose, err := fx.ParsePurpose(c.purpose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	rate, err := NewFxService().Rate(purpose, on, c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("1 %s = %.4f INR (TT buy, %s as of %s)\n", c.currency, rate, purpose, fx.ReferenceDate(purpose, on))
	return subcommands.ExitSuccess
}
