package bullion

import (
	"errors"
	"fmt"
)

// Kind is a typed string identifying the nature of a transaction.
type Kind string

// Transaction kinds recorded in the ledger.
const (
	KindPurchase Kind = "purchase" // stock acquired from a supplier
	KindSale     Kind = "sale"     // stock disposed to a customer
)

// Transaction is a single immutable ledger record.
//
// COGS, Profit and Trace are not inputs: the replay engine computes them for
// sales and merges them onto the record for downstream display. On input they
// must be left zero.
type Transaction struct {
	ID           string // unique within the ledger, duplicates resolved by the caller
	Date         Date
	CreatedAt    string // RFC3339 creation timestamp; blank on legacy records
	Kind         Kind
	Counterparty string
	Grams        Quantity
	UnitPrice    Money // per gram
	Taxable      Money
	Tax          Money
	Total        Money

	// Attached by the replay engine on sales only.
	COGS   Money
	Profit Money
	Trace  []string
}

// IsPurchase reports whether the transaction acquires stock.
func (t Transaction) IsPurchase() bool { return t.Kind == KindPurchase }

// IsSale reports whether the transaction disposes stock.
func (t Transaction) IsSale() bool { return t.Kind == KindSale }

// Currency returns the currency carried by the transaction amounts, or ""
// when every amount is weakly typed.
func (t Transaction) Currency() string {
	for _, m := range []Money{t.UnitPrice, t.Taxable, t.Tax, t.Total} {
		if c := m.Currency(); c != "" {
			return c
		}
	}
	return ""
}

// Validate checks the structural shape of the record: the fields a record
// cannot be identified or ordered without. Business-data problems (blank
// counterparty, non-positive quantity or price) deliberately pass through
// here; the audit engine reports them as issues instead.
func (t Transaction) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if t.Date.IsZero() {
		errs = append(errs, errors.New("missing date"))
	}
	if t.Kind != KindPurchase && t.Kind != KindSale {
		errs = append(errs, fmt.Errorf("unknown kind %q", t.Kind))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid transaction %q: %w", t.ID, errors.Join(errs...))
	}
	return nil
}
