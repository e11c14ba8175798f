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

// turnoverCmd holds the flags for the 'turnover' subcommand.
type turnoverCmd struct {
	start string
	end   string
}

func (*turnoverCmd) Name() string     { return "turnover" }
func (*turnoverCmd) Synopsis() string { return "display turnover statistics over a date window" }
func (*turnoverCmd) Usage() string {
	return `gold turnover [-s <start_date>] [-e <end_date>]

  Computes the turnover ratio, the average inventory value and the average
  days-to-sell over the window. Defaults to the last 90 days.
`
}

func (c *turnoverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", bullion.Today().Add(-90).String(), "Start date of the window.")
	f.StringVar(&c.end, "e", bullion.Today().String(), "End date of the window.")
}

func (c *turnoverCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := parseRange(c.start, c.end)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Turnover(ledger.NewTurnoverReport(r)))
	return subcommands.ExitSuccess
}
