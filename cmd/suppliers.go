package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sonaworks/bullion/renderer"
)

type suppliersCmd struct{}

func (*suppliersCmd) Name() string     { return "suppliers" }
func (*suppliersCmd) Synopsis() string { return "display purchase statistics per supplier" }
func (*suppliersCmd) Usage() string {
	return `gold suppliers

  Groups purchases by supplier and shows volume, weighted-average price,
  price range and transaction count, sorted by volume.
`
}

func (*suppliersCmd) SetFlags(f *flag.FlagSet) {}

func (c *suppliersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Suppliers(ledger.NewSupplierReport()))
	return subcommands.ExitSuccess
}
