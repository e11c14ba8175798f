package bullion

// HoldingReport is the live batch-level inventory for display.
type HoldingReport struct {
	Batches    []*Batch // acquisition order, depleted batches included
	TotalGrams Quantity
	BookValue  Money // FIFO cost value of the remaining stock

	// Market valuation, filled only when a spot price is supplied.
	SpotPrice   Money // per gram
	MarketValue Money
}

// NewHoldingReport derives the current holding from a fresh replay.
func (l *Ledger) NewHoldingReport() *HoldingReport {
	r := l.Replay()
	return &HoldingReport{
		Batches:    r.Batches,
		TotalGrams: r.Stock,
		BookValue:  r.Value,
	}
}

// WithSpot values the holding at the given per-gram spot price.
func (h *HoldingReport) WithSpot(price Money) *HoldingReport {
	h.SpotPrice = price
	h.MarketValue = price.Mul(h.TotalGrams)
	return h
}

// ActiveBatches returns the batches still holding stock.
func (h *HoldingReport) ActiveBatches() []*Batch {
	var active []*Batch
	for _, b := range h.Batches {
		if b.Remaining.IsPositive() {
			active = append(active, b)
		}
	}
	return active
}
