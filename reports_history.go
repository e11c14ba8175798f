package bullion

// HistoryEntry is the stock state at the end of one day.
type HistoryEntry struct {
	Date  Date
	Grams Quantity
	Value Money
}

// HistoryReport is a day-by-day trend of stock and FIFO value.
type HistoryReport struct {
	Range   Range
	Entries []HistoryEntry
}

// NewHistoryReport builds the stock trend over the range, one snapshot per
// day. Each entry is an independent bounded replay of the full history.
func (l *Ledger) NewHistoryReport(r Range) *HistoryReport {
	report := &HistoryReport{Range: r}
	if r.To.Before(r.From) {
		return report
	}
	for on := r.From; !on.After(r.To); on = on.Add(1) {
		pos := l.Snapshot(on)
		report.Entries = append(report.Entries, HistoryEntry{Date: on, Grams: pos.Grams, Value: pos.Value})
	}
	return report
}
