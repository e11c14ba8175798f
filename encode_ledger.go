package bullion

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txLine is the wire form of one ledger line. Money fields are bare decimals
// in the ledger currency; an optional per-line currency overrides it.
type txLine struct {
	Kind         Kind            `json:"kind"`
	ID           string          `json:"id"`
	Date         Date            `json:"date"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	Counterparty string          `json:"counterparty"`
	Grams        Quantity        `json:"grams"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Taxable      decimal.Decimal `json:"taxable"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency,omitempty"`
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line, and returns a sorted Ledger. Derived fields are never
// read from the file: they are recomputed by replay.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var line txLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("could not decode ledger line %q: %w", string(lineBytes), err)
		}

		// A currency on the first line sets the ledger currency; a later line
		// carrying a different one is rejected here, so the arithmetic core
		// never sees mixed currencies.
		if line.Currency != "" && line.Currency != ledger.currency {
			if ledger.Len() > 0 {
				return nil, fmt.Errorf("mixed currencies in ledger: transaction %q is in %q, ledger is in %q",
					line.ID, line.Currency, ledger.currency)
			}
			ledger.SetCurrency(line.Currency)
		}
		cur := ledger.currency
		tx := Transaction{
			ID:           line.ID,
			Date:         line.Date,
			CreatedAt:    line.CreatedAt,
			Kind:         line.Kind,
			Counterparty: line.Counterparty,
			Grams:        line.Grams,
			UnitPrice:    M(line.UnitPrice, cur),
			Taxable:      M(line.Taxable, cur),
			Tax:          M(line.Tax, cur),
			Total:        M(line.Total, cur),
		}
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		ledger.Append(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction writes a single transaction as one canonical JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	var obj jsonObjectWriter
	obj.Append("kind", tx.Kind).
		Append("id", tx.ID).
		Append("date", tx.Date).
		Optional("createdAt", tx.CreatedAt).
		Append("counterparty", tx.Counterparty).
		Append("grams", tx.Grams).
		Append("unitPrice", tx.UnitPrice).
		Append("taxable", tx.Taxable).
		Append("tax", tx.Tax).
		Append("total", tx.Total)

	// the default currency is implicit on the wire
	if cur := tx.Currency(); cur != DefaultCurrency {
		obj.Optional("currency", cur)
	}

	raw, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode transaction %q: %w", tx.ID, err)
	}
	if _, err := w.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("could not write transaction %q: %w", tx.ID, err)
	}
	return nil
}

// EncodeLedger writes the whole ledger in canonical JSONL form, one
// transaction per line in chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
