package bullion

// Batch is a discrete purchased lot of stock, consumed oldest-first.
//
// A batch is created exactly once from its originating purchase (its ID is the
// purchase's ID, one batch per purchase), mutated only by sale replay, and
// never deleted: a depleted batch persists as a zero-remaining historical
// record with its close date.
type Batch struct {
	ID        string
	Date      Date     // acquisition date
	Original  Quantity // quantity acquired, fixed
	Remaining Quantity // in [0, Original], monotonically non-increasing
	UnitCost  Money    // per gram, fixed at acquisition
	ClosedOn  Date     // zero while the batch still holds stock
}

// Closed reports whether the batch has been fully depleted.
func (b *Batch) Closed() bool { return !b.ClosedOn.IsZero() }

// Value returns the cost value of the remaining stock in the batch.
func (b *Batch) Value() Money { return b.UnitCost.Mul(b.Remaining) }
