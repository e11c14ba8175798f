package bullion

// TurnoverReport measures how fast stock moved over a date window.
type TurnoverReport struct {
	Range                 Range
	TotalCOGS             Money   // FIFO cost consumed by in-window sales
	AverageInventoryValue Money   // (snapshot value at start + at end) / 2
	Ratio                 float64 // TotalCOGS / AverageInventoryValue, 0 when undefined
	AverageDaysToSell     float64 // window days / Ratio, 0 when Ratio is 0
}

// NewTurnoverReport computes turnover statistics for the window. The ratio
// and days-to-sell degrade to 0 rather than NaN or Inf when the window holds
// no inventory or no sales.
func (l *Ledger) NewTurnoverReport(r Range) *TurnoverReport {
	report := &TurnoverReport{Range: r}

	replay := l.Replay()
	for _, tx := range replay.Transactions {
		if tx.IsSale() && r.Contains(tx.Date) {
			report.TotalCOGS = report.TotalCOGS.Add(tx.COGS)
		}
	}

	start := l.Snapshot(r.From)
	end := l.Snapshot(r.To)
	report.AverageInventoryValue = start.Value.Add(end.Value).Div(Q(2))

	if report.AverageInventoryValue.IsPositive() {
		report.Ratio = report.TotalCOGS.DivAmount(report.AverageInventoryValue).InexactFloat64()
	}
	if report.Ratio > 0 {
		report.AverageDaysToSell = float64(r.Days()) / report.Ratio
	}
	return report
}
