package bullion

import (
	"iter"
	"slices"
)

// Ledger holds the transaction collection.
//
// Transactions are kept in chronological order (CompareTransactions). The
// ledger does not resolve duplicate IDs; callers feeding it from storage or
// cache reconciliation must have done so already.
type Ledger struct {
	currency     string
	transactions []Transaction
}

// NewLedger creates an empty ledger reporting in the default currency.
func NewLedger() *Ledger {
	return &Ledger{currency: DefaultCurrency}
}

// Currency returns the ledger's reporting currency.
func (l *Ledger) Currency() string { return l.currency }

// SetCurrency sets the ledger's reporting currency.
func (l *Ledger) SetCurrency(cur string) { l.currency = cur }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append adds transactions to the ledger and restores chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	slices.SortStableFunc(l.transactions, CompareTransactions)
}

// Transactions returns an iterator over the transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// zero date for an empty ledger.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction, or the
// zero date for an empty ledger.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// Replay runs the FIFO replay engine over the ledger with default options.
func (l *Ledger) Replay() *ReplayResult {
	return Replay(l.transactions, ReplayOptions{})
}

// Snapshot computes the stock state as of the end of the given day.
func (l *Ledger) Snapshot(on Date) Position {
	return StockOn(l.transactions, on, DefaultEpsilon)
}
