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

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	start string
	end   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the day-by-day stock and value trend" }
func (*historyCmd) Usage() string {
	return `gold history [-s <start_date>] [-e <end_date>]

  Displays the stock quantity and FIFO value at the end of each day in the
  range, reconstructed by bounded replay. Defaults to the last 30 days.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", bullion.Today().Add(-30).String(), "Start date of the trend.")
	f.StringVar(&c.end, "e", bullion.Today().String(), "End date of the trend.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := parseRange(c.start, c.end)
	if status != subcommands.ExitSuccess {
		return status
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.History(ledger.NewHistoryReport(r)))
	return subcommands.ExitSuccess
}

// parseRange parses a pair of date flags into a Range.
func parseRange(start, end string) (bullion.Range, subcommands.ExitStatus) {
	from, err := bullion.ParseDate(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return bullion.Range{}, subcommands.ExitUsageError
	}
	to, err := bullion.ParseDate(end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return bullion.Range{}, subcommands.ExitUsageError
	}
	return bullion.Range{From: from, To: to}, subcommands.ExitSuccess
}
