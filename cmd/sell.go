package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sonaworks/bullion"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	id           string
	date         string
	counterparty string
	grams        float64
	price        float64
	taxable      float64
	tax          float64
	total        float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of stock to a customer" }
func (*sellCmd) Usage() string {
	return `gold sell -to <customer> -q <grams> -p <unit_price> [-d <date>] [-taxable <amount>] [-tax <amount>] [-total <amount>]

  Records a sale transaction in the ledger. The replay engine draws the sold
  grams from the oldest open batches and attaches cost and profit figures.
  A sale beyond the available stock still completes; the audit report is
  where the resulting divergence shows up.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction identifier. Generated from the clock when empty.")
	f.StringVar(&c.date, "d", bullion.Today().String(), "Date of the sale.")
	f.StringVar(&c.counterparty, "to", "", "Customer name.")
	f.Float64Var(&c.grams, "q", 0, "Quantity sold, in grams.")
	f.Float64Var(&c.price, "p", 0, "Unit price per gram.")
	f.Float64Var(&c.taxable, "taxable", 0, "Taxable amount. Defaults to grams x unit price.")
	f.Float64Var(&c.tax, "tax", 0, "Tax amount.")
	f.Float64Var(&c.total, "total", 0, "Total amount. Defaults to taxable + tax.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := buildTransaction(bullion.KindSale, c.id, c.date, c.counterparty, c.grams, c.price, c.taxable, c.tax, c.total)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return EncodeTransaction(tx)
}
