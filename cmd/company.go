package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/TheAlakazam/file2fa/figi"
	"github.com/google/subcommands"
)

type companyCmd struct {
	openfigiKey string
}

func (*companyCmd) Name() string     { return "company" }
func (*companyCmd) Synopsis() string { return "look up company identity on OpenFIGI" }
func (*companyCmd) Usage() string {
	return `f2fa company <ticker>

  Looks up the issuing company for a US-listed ticker on OpenFIGI and
  prints the identity fields used in a Schedule FA row.
`
}

func (c *companyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.openfigiKey, "openfigi-api-key", "", "OpenFIGI API key. This flag takes precedence over the "+openfigiKeyEnv+" environment variable.")
}

func (c *companyCmd) apiKey() string {
	if c.openfigiKey == "" {
		c.openfigiKey = os.Getenv(openfigiKeyEnv)
	}
	return c.openfigiKey
}

func (c *companyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one ticker symbol")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	client := &figi.Client{APIKey: c.apiKey()}
	company, err := client.Lookup(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not look up %q: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Name:    %s\n", company.Name)
	fmt.Printf("Country: %s (%s)\n", company.CountryName, company.CountryCode)
	if company.Address != "" {
		fmt.Printf("Address: %s %s\n", company.Address, company.ZipCode)
	}
	return subcommands.ExitSuccess
}
