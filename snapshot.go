package bullion

// Position is the reconstructed stock state as of the end of a calendar day.
type Position struct {
	On    Date
	Grams Quantity
	Value Money
}

// layer is a lightweight {quantity, unit cost} pair for the snapshot walk.
// Deliberately not a Batch: the snapshot never touches the live replay's
// batch objects.
type layer struct {
	qty  Quantity
	cost Money // per gram
}

// StockOn computes the FIFO stock state as of the end of cutoff by an
// independent bounded replay over transactions dated on or before it.
//
// The walk keeps a running gram counter that is decremented on sales past
// zero without clamping; only the final reported figure is clamped to zero.
// With cutoff at the latest transaction date the result equals the replay
// engine's live totals: both implement the same consumption policy.
//
// Every call re-walks the full bounded history. Callers building a trend over
// N days make N independent passes; at ledger scale this favors simplicity
// over incremental computation.
func StockOn(txs []Transaction, cutoff Date, eps Quantity) Position {
	if !eps.IsPositive() {
		eps = DefaultEpsilon
	}

	var bounded []Transaction
	for _, tx := range txs {
		if !tx.Date.After(cutoff) {
			bounded = append(bounded, tx)
		}
	}
	ordered := SortTransactions(bounded)

	var total Quantity
	layers := make([]layer, 0, len(ordered))
	for _, tx := range ordered {
		switch tx.Kind {
		case KindPurchase:
			layers = append(layers, layer{qty: tx.Grams, cost: tx.UnitPrice})
			total = total.Add(tx.Grams)
		case KindSale:
			total = total.Sub(tx.Grams) // unclamped on purpose
			need := tx.Grams
			for i := range layers {
				if !need.GreaterThan(eps) {
					break
				}
				if !layers[i].qty.GreaterThan(eps) {
					continue
				}
				take := need
				if layers[i].qty.LessThan(take) {
					take = layers[i].qty
				}
				layers[i].qty = layers[i].qty.Sub(take)
				need = need.Sub(take)
				if layers[i].qty.LessThan(eps) {
					layers[i].qty = Q(0)
				}
			}
		}
	}

	pos := Position{On: cutoff}
	for _, l := range layers {
		pos.Value = pos.Value.Add(l.cost.Mul(l.qty))
	}
	if total.IsNegative() {
		total = Q(0)
	}
	pos.Grams = total
	return pos
}
