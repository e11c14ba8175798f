package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/sonaworks/bullion"
	"github.com/sonaworks/bullion/renderer"
)

type agingCmd struct{}

func (*agingCmd) Name() string     { return "aging" }
func (*agingCmd) Synopsis() string { return "display the age breakdown of the active stock" }
func (*agingCmd) Usage() string {
	return `gold aging

  Buckets the active batches by age in days, relative to now, and shows the
  grams-weighted average age of the stock.
`
}

func (*agingCmd) SetFlags(f *flag.FlagSet) {}

func (c *agingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	replay := ledger.Replay()
	printMarkdown(renderer.Aging(bullion.NewAgingReport(replay.Batches, time.Now())))
	return subcommands.ExitSuccess
}
