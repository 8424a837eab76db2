// Package cmd implements the CLI application to convert brokerage
// statements into Schedule FA disclosure reports.
package cmd

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/TheAlakazam/file2fa"
	"github.com/TheAlakazam/file2fa/figi"
	"github.com/TheAlakazam/file2fa/fx"
	"github.com/TheAlakazam/file2fa/yahoo"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&convertCmd{}, "statements")

	c.Register(&fxRateCmd{}, "rates")
	c.Register(&clearFxCacheCmd{}, "rates")

	c.Register(&companyCmd{}, "lookups")
	c.Register(&pricesCmd{}, "lookups")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var fxCacheDir = flag.String("fx-cache-dir", defaultFxCacheDir(), "Folder where fetched exchange rate tables are persisted")

const openfigiKeyEnv = "OPENFIGI_API_KEY"

func init() {
	// Optional .env in the working directory, for the OpenFIGI key mostly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("warning, could not read .env file:", err)
	}
}

func defaultFxCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "f2fa")
}

// NewFxService builds the exchange rate service backed by the app cache folder.
func NewFxService() *fx.Service {
	return fx.NewService(fx.DirStore{Dir: *fxCacheDir})
}

// NewPipeline wires the statement conversion pipeline with live lookups.
func NewPipeline(openfigiKey string) *file2fa.Pipeline {
	return &file2fa.Pipeline{
		Company: &figi.Client{APIKey: openfigiKey},
		Prices:  &yahoo.Client{},
		Rates:   NewFxService(),
	}
}
