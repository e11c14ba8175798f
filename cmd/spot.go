package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sonaworks/bullion"
)

// spotCmd holds the flags for the 'spot' subcommand.
type spotCmd struct {
	currency string
}

func (*spotCmd) Name() string     { return "spot" }
func (*spotCmd) Synopsis() string { return "fetch the current gold spot price per gram" }
func (*spotCmd) Usage() string {
	return `gold spot [-c <currency>]

  Fetches the current gold spot price from the provider. Responses are
  cached on disk for the day.
`
}

func (c *spotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", bullion.DefaultCurrency, "Currency for the quoted price.")
}

func (c *spotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := bullion.FetchSpotPrice(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching spot price: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s / g\n", price)
	return subcommands.ExitSuccess
}
