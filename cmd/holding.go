package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sonaworks/bullion"
	"github.com/sonaworks/bullion/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	spot bool
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the live batch-level stock" }
func (*holdingCmd) Usage() string {
	return `gold holding [-spot]

  Displays the open batches with remaining quantities and the FIFO book
  value of the stock. With -spot, also values the stock at the current
  gold spot price.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.spot, "spot", false, "value the stock at the current spot price")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	report := ledger.NewHoldingReport()
	if c.spot {
		price, err := bullion.FetchSpotPrice(ledger.Currency())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching spot price: %v\n", err)
			return subcommands.ExitFailure
		}
		report.WithSpot(price)
	}

	printMarkdown(renderer.Holding(report))
	return subcommands.ExitSuccess
}
