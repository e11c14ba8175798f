package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/sonaworks/bullion"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	id           string
	date         string
	counterparty string
	grams        float64
	price        float64
	taxable      float64
	tax          float64
	total        float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of stock from a supplier" }
func (*buyCmd) Usage() string {
	return `gold buy -from <supplier> -q <grams> -p <unit_price> [-d <date>] [-taxable <amount>] [-tax <amount>] [-total <amount>]

  Records a purchase transaction in the ledger. The purchase opens a new
  batch that later sales will draw from, oldest first.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction identifier. Generated from the clock when empty.")
	f.StringVar(&c.date, "d", bullion.Today().String(), "Date of the purchase.")
	f.StringVar(&c.counterparty, "from", "", "Supplier name.")
	f.Float64Var(&c.grams, "q", 0, "Quantity purchased, in grams.")
	f.Float64Var(&c.price, "p", 0, "Unit price per gram.")
	f.Float64Var(&c.taxable, "taxable", 0, "Taxable amount. Defaults to grams x unit price.")
	f.Float64Var(&c.tax, "tax", 0, "Tax amount.")
	f.Float64Var(&c.total, "total", 0, "Total amount. Defaults to taxable + tax.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := buildTransaction(bullion.KindPurchase, c.id, c.date, c.counterparty, c.grams, c.price, c.taxable, c.tax, c.total)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return EncodeTransaction(tx)
}

// buildTransaction assembles and structurally validates a new ledger record
// from command line values.
func buildTransaction(kind bullion.Kind, id, dateStr, counterparty string, grams, price, taxable, tax, total float64) (bullion.Transaction, error) {
	on, err := bullion.ParseDate(dateStr)
	if err != nil {
		return bullion.Transaction{}, fmt.Errorf("error parsing date: %w", err)
	}
	now := time.Now().UTC()
	if id == "" {
		id = fmt.Sprintf("%s-%d", kind, now.UnixNano())
	}
	if taxable == 0 {
		taxable = grams * price
	}
	if total == 0 {
		total = taxable + tax
	}

	cur := bullion.DefaultCurrency
	tx := bullion.Transaction{
		ID:           id,
		Date:         on,
		CreatedAt:    now.Format(bullion.DatetimeFormat),
		Kind:         kind,
		Counterparty: counterparty,
		Grams:        bullion.Q(grams),
		UnitPrice:    bullion.M(price, cur),
		Taxable:      bullion.M(taxable, cur),
		Tax:          bullion.M(tax, cur),
		Total:        bullion.M(total, cur),
	}
	if err := tx.Validate(); err != nil {
		return bullion.Transaction{}, err
	}
	return tx, nil
}
