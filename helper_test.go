package bullion

import (
	"math"
	"testing"
)

// INR is a helper for tests to create rupee money from const.
func INR(v float64) Money { return M(v, "INR") }

// purchase builds a minimal purchase record; taxable and total default to
// grams x price.
func purchase(id, on, supplier string, grams, price float64) Transaction {
	return Transaction{
		ID:           id,
		Date:         MustParseDate(on),
		Kind:         KindPurchase,
		Counterparty: supplier,
		Grams:        Q(grams),
		UnitPrice:    INR(price),
		Taxable:      INR(grams * price),
		Total:        INR(grams * price),
	}
}

// sale builds a minimal sale record with an explicit taxable amount.
func sale(id, on, customer string, grams, taxable float64) Transaction {
	var unit float64
	if grams != 0 {
		unit = taxable / grams
	}
	return Transaction{
		ID:           id,
		Date:         MustParseDate(on),
		Kind:         KindSale,
		Counterparty: customer,
		Grams:        Q(grams),
		UnitPrice:    INR(unit),
		Taxable:      INR(taxable),
		Total:        INR(taxable),
	}
}

// stamped returns a copy of tx with a creation timestamp.
func stamped(tx Transaction, ts string) Transaction {
	tx.CreatedAt = ts
	return tx
}

// approx fails the test when got is not within tol of want.
func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.IsInf(got, 0) || math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
