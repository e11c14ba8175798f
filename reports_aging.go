package bullion

import (
	"math"
	"time"
)

// AgingBucket is the grams of active stock whose batch age falls in the band.
type AgingBucket struct {
	Label string
	Grams Quantity
}

// AgingReport breaks the active stock down by batch age.
//
// Ages are relative to the wall clock passed in, not to a fixed report date:
// two reports a day apart can shift grams between buckets.
type AgingReport struct {
	Now            time.Time
	Buckets        []AgingBucket
	AverageAgeDays float64 // grams-weighted over all active batches
}

// agingBands are the fixed bucket bounds, in days inclusive.
var agingBands = []struct {
	label string
	max   int
}{
	{"0-7", 7},
	{"8-15", 15},
	{"16-30", 30},
	{"30+", math.MaxInt},
}

// NewAgingReport buckets every active batch (remaining > 0) by its age in
// whole days (ceiling of the day difference to now). Each active batch lands
// in exactly one bucket, so the bucket grams sum to the total active stock.
func NewAgingReport(batches []*Batch, now time.Time) *AgingReport {
	report := &AgingReport{Now: now, Buckets: make([]AgingBucket, len(agingBands))}
	for i, band := range agingBands {
		report.Buckets[i].Label = band.label
	}

	var totalGrams, weighted Quantity
	for _, b := range batches {
		if !b.Remaining.IsPositive() {
			continue
		}
		age := ageInDays(b.Date, now)
		for i, band := range agingBands {
			if age <= band.max {
				report.Buckets[i].Grams = report.Buckets[i].Grams.Add(b.Remaining)
				break
			}
		}
		totalGrams = totalGrams.Add(b.Remaining)
		weighted = weighted.Add(b.Remaining.Mul(Q(age)))
	}
	if totalGrams.IsPositive() {
		report.AverageAgeDays = weighted.Div(totalGrams).InexactFloat64()
	}
	return report
}

// TotalGrams sums the bucket contents.
func (r *AgingReport) TotalGrams() Quantity {
	var total Quantity
	for _, b := range r.Buckets {
		total = total.Add(b.Grams)
	}
	return total
}

// ageInDays returns the whole-day age of an acquisition date, rounding any
// partial day up. The clock's wall calendar day is what counts: acquisition
// dates are midnight UTC, so the comparison re-reads now in UTC to keep ages
// stable across timezones.
func ageInDays(acquired Date, now time.Time) int {
	y, m, d := now.Date()
	wall := time.Date(y, m, d, now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
	age := math.Ceil(wall.Sub(acquired.time()).Hours() / 24)
	if age < 0 {
		return 0
	}
	return int(age)
}
