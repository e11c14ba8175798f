package bullion

import (
	"slices"
	"strings"
)

// SupplierStat aggregates the purchases from one counterparty.
type SupplierStat struct {
	Name         string
	Grams        Quantity
	AveragePrice Money // grams-weighted: total cost / total grams
	MinPrice     Money
	MaxPrice     Money
	PriceSpread  Money // max - min, a crude volatility proxy
	Purchases    int
}

// SupplierReport lists suppliers by descending purchased volume.
type SupplierReport struct {
	Suppliers []SupplierStat
}

// NewSupplierReport groups purchase transactions by counterparty.
// Sales do not contribute; suppliers with equal volume sort by name.
func NewSupplierReport(txs []Transaction) *SupplierReport {
	type acc struct {
		grams     Quantity
		cost      Money
		min, max  Money
		purchases int
	}
	byName := make(map[string]*acc)

	for _, tx := range txs {
		if !tx.IsPurchase() {
			continue
		}
		a := byName[tx.Counterparty]
		if a == nil {
			a = &acc{min: tx.UnitPrice, max: tx.UnitPrice}
			byName[tx.Counterparty] = a
		}
		a.grams = a.grams.Add(tx.Grams)
		a.cost = a.cost.Add(tx.UnitPrice.Mul(tx.Grams))
		if tx.UnitPrice.LessThan(a.min) {
			a.min = tx.UnitPrice
		}
		if tx.UnitPrice.GreaterThan(a.max) {
			a.max = tx.UnitPrice
		}
		a.purchases++
	}

	report := &SupplierReport{Suppliers: make([]SupplierStat, 0, len(byName))}
	for name, a := range byName {
		stat := SupplierStat{
			Name:        name,
			Grams:       a.grams,
			MinPrice:    a.min,
			MaxPrice:    a.max,
			PriceSpread: a.max.Sub(a.min),
			Purchases:   a.purchases,
		}
		if a.grams.IsPositive() {
			stat.AveragePrice = a.cost.Div(a.grams)
		}
		report.Suppliers = append(report.Suppliers, stat)
	}

	slices.SortFunc(report.Suppliers, func(a, b SupplierStat) int {
		if c := b.Grams.Cmp(a.Grams); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return report
}

// NewSupplierReport builds the supplier statistics for the whole ledger.
func (l *Ledger) NewSupplierReport() *SupplierReport {
	return NewSupplierReport(l.transactions)
}
