package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/sonaworks/bullion"
)

func fixture(t *testing.T) *bullion.Ledger {
	t.Helper()
	l, err := bullion.DecodeLedger(strings.NewReader(
		`{"kind":"purchase","id":"P1","date":"2025-01-01","counterparty":"Acme","grams":100,"unitPrice":6000,"taxable":600000,"tax":0,"total":600000}
{"kind":"sale","id":"S1","date":"2025-01-15","counterparty":"Customer","grams":40,"unitPrice":6500,"taxable":260000,"tax":7800,"total":267800}
`))
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestHolding(t *testing.T) {
	l := fixture(t)
	got := Holding(l.NewHoldingReport())
	for _, want := range []string{"# Holding", "P1", "2025-01-01", "**Total stock**: 60 g"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Spot price") {
		t.Errorf("spot section rendered without a spot price:\n%s", got)
	}
}

func TestHolding_WithSpot(t *testing.T) {
	l := fixture(t)
	got := Holding(l.NewHoldingReport().WithSpot(bullion.M(7000, "INR")))
	if !strings.Contains(got, "Market value") {
		t.Errorf("missing market valuation in:\n%s", got)
	}
}

func TestAging(t *testing.T) {
	l := fixture(t)
	replay := l.Replay()
	got := Aging(bullion.NewAgingReport(replay.Batches, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)))
	for _, want := range []string{"# Stock aging", "16-30", "Weighted average age"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestSuppliers(t *testing.T) {
	l := fixture(t)
	got := Suppliers(l.NewSupplierReport())
	if !strings.Contains(got, "| Acme |") {
		t.Errorf("missing supplier row in:\n%s", got)
	}
}

func TestTurnover(t *testing.T) {
	l := fixture(t)
	r := l.NewTurnoverReport(bullion.Range{
		From: bullion.MustParseDate("2025-01-01"),
		To:   bullion.MustParseDate("2025-01-31"),
	})
	got := Turnover(r)
	for _, want := range []string{"# Turnover", "Total COGS", "Turnover ratio"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestAudit(t *testing.T) {
	l := fixture(t)
	got := Audit(l.NewAuditReport(time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)))
	for _, want := range []string{"# Audit 2025-01-20 09:00", "100/100", "No issues found."} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestHistory(t *testing.T) {
	l := fixture(t)
	r := l.NewHistoryReport(bullion.Range{
		From: bullion.MustParseDate("2025-01-14"),
		To:   bullion.MustParseDate("2025-01-16"),
	})
	got := History(r)
	for _, want := range []string{"# Stock history", "2025-01-15", "| 60 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestTransactions(t *testing.T) {
	l := fixture(t)
	replay := l.Replay()
	got := Transactions(replay.Transactions)
	for _, want := range []string{"# Transactions", "purchase", "sale", "COGS", "profit"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
