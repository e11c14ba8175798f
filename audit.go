package bullion

import (
	"fmt"
	"time"
)

// auditStockTolerance is the reporting threshold for the naive stock
// reconciliation, deliberately coarser than DefaultEpsilon: it guards an
// operator-facing figure, not replay arithmetic.
var auditStockTolerance = Q(0.001)

// AuditReport is a read-only health check of the ledger.
type AuditReport struct {
	GeneratedAt  time.Time
	Transactions int
	LiveStock    Quantity // as reported by the replay engine
	LiveValue    Money
	NaiveStock   Quantity // sum(purchases) - sum(sales), no FIFO, no clamping
	Issues       []string
	Score        int // 100 healthy, floored at 0
}

// Audit recomputes the stock from the raw transactions and cross-checks it
// against the live ledger state.
//
// It must not share code with the replay engine: the naive sum is an
// independent verifier, and a mismatch between the two is the signal this
// report exists to surface.
func Audit(txs []Transaction, liveStock Quantity, liveValue Money, now time.Time) *AuditReport {
	report := &AuditReport{
		GeneratedAt:  now,
		Transactions: len(txs),
		LiveStock:    liveStock,
		LiveValue:    liveValue,
		Score:        100,
	}

	// Check 1: naive stock reconciliation.
	var naive Quantity
	for _, tx := range txs {
		switch tx.Kind {
		case KindPurchase:
			naive = naive.Add(tx.Grams)
		case KindSale:
			naive = naive.Sub(tx.Grams)
		}
	}
	report.NaiveStock = naive
	diff := naive.Sub(liveStock)
	if diff.IsNegative() {
		diff = diff.Neg()
	}
	if diff.GreaterThan(auditStockTolerance) {
		report.Issues = append(report.Issues, fmt.Sprintf(
			"stock mismatch: ledger reports %s g but raw transactions sum to %s g", liveStock, naive))
		report.Score -= 20
	}

	// Check 2: negative running stock, chronological and unclamped.
	var running Quantity
	dips := 0
	for _, tx := range SortTransactions(txs) {
		switch tx.Kind {
		case KindPurchase:
			running = running.Add(tx.Grams)
		case KindSale:
			running = running.Sub(tx.Grams)
		}
		if running.LessThan(DefaultEpsilon.Neg()) {
			dips++
		}
	}
	if dips > 0 {
		report.Issues = append(report.Issues, fmt.Sprintf(
			"stock went negative %d time(s) during chronological replay", dips))
		report.Score -= 15
	}

	// Check 3: data integrity of individual records.
	bad := 0
	for _, tx := range txs {
		if tx.Counterparty == "" || tx.Date.IsZero() || !tx.Grams.IsPositive() || !tx.UnitPrice.IsPositive() {
			bad++
		}
	}
	if bad > 0 {
		report.Issues = append(report.Issues, fmt.Sprintf(
			"%d transaction(s) with blank counterparty, blank date, or non-positive quantity or price", bad))
		report.Score -= 10
	}

	if report.Score < 0 {
		report.Score = 0
	}
	return report
}

// NewAuditReport runs a fresh replay and audits the ledger against it.
func (l *Ledger) NewAuditReport(now time.Time) *AuditReport {
	r := l.Replay()
	return Audit(l.transactions, r.Stock, r.Value, now)
}
