package bullion

import "fmt"

// DefaultEpsilon is the threshold, in grams, below which a quantity is
// treated as exactly zero: a batch with less remaining is depleted, a sale
// with less outstanding is satisfied, and a running stock total above its
// negation is non-negative. Every comparison site uses this value (or the
// per-call override in ReplayOptions), never a literal.
var DefaultEpsilon = Q(0.0001)

// ReplayOptions configures a replay run.
type ReplayOptions struct {
	// Epsilon overrides DefaultEpsilon when positive.
	Epsilon Quantity
}

func (o ReplayOptions) epsilon() Quantity {
	if o.Epsilon.IsPositive() {
		return o.Epsilon
	}
	return DefaultEpsilon
}

// ReplayResult is the full output of one replay run.
type ReplayResult struct {
	// Transactions are the input records in chronological order, with COGS,
	// Profit and Trace attached to every sale.
	Transactions []Transaction
	// Batches holds one batch per purchase, in acquisition order, with final
	// remaining quantities. Depleted batches are kept, closed.
	Batches []*Batch
	// Stock is the sum of all remaining batch quantities.
	Stock Quantity
	// Value is the FIFO cost value of the remaining stock.
	Value Money
}

// Replay derives the live inventory state from an unordered transaction
// collection.
//
// Each call builds a fresh set of zero-state batches from the purchases; no
// batch is ever reused across calls, so replaying the same collection twice
// yields identical results. The engine is total: malformed records flow
// through unfiltered (the audit engine reports them) and no transaction is
// ever rejected.
//
// A sale larger than the available stock completes anyway: the excess grams
// carry zero cost basis, which inflates its profit, and an understock trace
// line flags the event. The audit engine's naive reconciliation is where the
// resulting divergence from raw totals becomes visible.
func Replay(txs []Transaction, opts ReplayOptions) *ReplayResult {
	eps := opts.epsilon()
	ordered := SortTransactions(txs)
	batches := make([]*Batch, 0, len(ordered))

	for i := range ordered {
		tx := &ordered[i]
		switch tx.Kind {
		case KindPurchase:
			batches = append(batches, &Batch{
				ID:        tx.ID,
				Date:      tx.Date,
				Original:  tx.Grams,
				Remaining: tx.Grams,
				UnitCost:  tx.UnitPrice,
			})
		case KindSale:
			consume(tx, batches, eps)
		}
	}

	r := &ReplayResult{Transactions: ordered, Batches: batches}
	for _, b := range batches {
		r.Stock = r.Stock.Add(b.Remaining)
		r.Value = r.Value.Add(b.Value())
	}
	return r
}

// consume draws the sale's quantity from the open batches, oldest first, and
// attaches cost, profit and the consumption trace to the sale.
func consume(tx *Transaction, batches []*Batch, eps Quantity) {
	need := tx.Grams
	var cogs Money
	trace := make([]string, 0, 4)

	if tx.CreatedAt == "" {
		// Without a creation timestamp the comparator falls back to the ID
		// for same-day ordering; surface the assumption on the record.
		trace = append(trace, fmt.Sprintf(
			"no creation time on %s: order among same-day transactions assumed from id", tx.ID))
	}

	for _, b := range batches {
		if !need.GreaterThan(eps) {
			break
		}
		if !b.Remaining.GreaterThan(eps) {
			continue
		}
		take := need
		if b.Remaining.LessThan(take) {
			take = b.Remaining
		}
		b.Remaining = b.Remaining.Sub(take)
		need = need.Sub(take)
		cogs = cogs.Add(b.UnitCost.Mul(take))
		trace = append(trace, fmt.Sprintf("%s g from batch dated %s @ %s", take, b.Date, b.UnitCost))
		if b.Remaining.LessThan(eps) {
			b.Remaining = Q(0)
			b.ClosedOn = tx.Date
		}
	}

	if need.GreaterThan(eps) {
		// Stockout: the disposal completes regardless, the uncovered grams
		// contribute no cost basis.
		trace = append(trace, fmt.Sprintf("understock: %s g disposed beyond available stock, no cost basis", need))
	}

	tx.COGS = cogs
	tx.Profit = tx.Taxable.Sub(cogs) // tax is excluded from profit
	tx.Trace = trace
}
