package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/sonaworks/bullion/renderer"
)

type auditCmd struct{}

func (*auditCmd) Name() string     { return "audit" }
func (*auditCmd) Synopsis() string { return "cross-check the ledger and report a health score" }
func (*auditCmd) Usage() string {
	return `gold audit

  Recomputes the stock naively from the raw transactions, independently of
  the FIFO engine, and reports mismatches, negative-stock events and data
  integrity problems with a 0-100 health score.
`
}

func (*auditCmd) SetFlags(f *flag.FlagSet) {}

func (c *auditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Audit(ledger.NewAuditReport(time.Now())))
	return subcommands.ExitSuccess
}
