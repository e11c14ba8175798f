package bullion

import (
	"testing"
	"time"
)

func TestNewAgingReport(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	batches := []*Batch{
		{ID: "P1", Date: MustParseDate("2025-01-29"), Original: Q(10), Remaining: Q(10), UnitCost: INR(6000)}, // 4 days
		{ID: "P2", Date: MustParseDate("2025-01-22"), Original: Q(20), Remaining: Q(15), UnitCost: INR(6000)}, // 11 days
		{ID: "P3", Date: MustParseDate("2025-01-12"), Original: Q(30), Remaining: Q(30), UnitCost: INR(6000)}, // 21 days
		{ID: "P4", Date: MustParseDate("2024-12-01"), Original: Q(40), Remaining: Q(5), UnitCost: INR(6000)},  // 63 days
		{ID: "P5", Date: MustParseDate("2025-01-01"), Original: Q(50), Remaining: Q(0), UnitCost: INR(6000)},  // depleted
	}

	r := NewAgingReport(batches, now)

	t.Run("bucket membership", func(t *testing.T) {
		want := map[string]Quantity{
			"0-7":   Q(10),
			"8-15":  Q(15),
			"16-30": Q(30),
			"30+":   Q(5),
		}
		for _, b := range r.Buckets {
			if !b.Grams.Equal(want[b.Label]) {
				t.Errorf("bucket %s = %s g, want %s", b.Label, b.Grams, want[b.Label])
			}
		}
	})

	t.Run("buckets partition the active stock", func(t *testing.T) {
		var active Quantity
		for _, b := range batches {
			if b.Remaining.IsPositive() {
				active = active.Add(b.Remaining)
			}
		}
		if !r.TotalGrams().Equal(active) {
			t.Errorf("bucket total = %s g, active stock = %s g", r.TotalGrams(), active)
		}
	})

	t.Run("weighted average age", func(t *testing.T) {
		// (10*4 + 15*11 + 30*21 + 5*63) / 60
		approx(t, "AverageAgeDays", r.AverageAgeDays, 1150.0/60.0, 1e-9)
	})
}

func TestNewAgingReport_PartialDayRoundsUp(t *testing.T) {
	// Half a day old counts as one whole day.
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	batches := []*Batch{
		{ID: "P1", Date: MustParseDate("2025-01-01"), Original: Q(10), Remaining: Q(10), UnitCost: INR(6000)},
	}
	r := NewAgingReport(batches, now)
	approx(t, "AverageAgeDays", r.AverageAgeDays, 1, 1e-9)
	if !r.Buckets[0].Grams.Equal(Q(10)) {
		t.Errorf("same-day stock must land in the youngest bucket, got %s g", r.Buckets[0].Grams)
	}
}

func TestNewAgingReport_LocalClock(t *testing.T) {
	// Half past midnight in an eastern timezone is still earlier than
	// midnight UTC; the wall calendar day must win over the UTC instant.
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 2, 1, 0, 30, 0, 0, ist)
	batches := []*Batch{
		{ID: "P1", Date: MustParseDate("2025-02-01"), Original: Q(10), Remaining: Q(10), UnitCost: INR(6000)},
		{ID: "P2", Date: MustParseDate("2025-01-25"), Original: Q(20), Remaining: Q(20), UnitCost: INR(6000)},
	}
	r := NewAgingReport(batches, now)
	// P1 is half an hour old, P2 a hair over 7 days: both in the first band.
	if !r.Buckets[0].Grams.Equal(Q(10)) {
		t.Errorf("0-7 bucket = %s g, want the same-day 10 g", r.Buckets[0].Grams)
	}
	if !r.Buckets[1].Grams.Equal(Q(20)) {
		t.Errorf("8-15 bucket = %s g, want the 8-day-old 20 g", r.Buckets[1].Grams)
	}
	// (10*1 + 20*8) / 30
	approx(t, "AverageAgeDays", r.AverageAgeDays, 170.0/30.0, 1e-9)
}

func TestNewAgingReport_Empty(t *testing.T) {
	r := NewAgingReport(nil, time.Now())
	if r.AverageAgeDays != 0 {
		t.Errorf("AverageAgeDays = %v for empty stock, want 0", r.AverageAgeDays)
	}
	if !r.TotalGrams().IsZero() {
		t.Errorf("TotalGrams = %s for empty stock, want 0", r.TotalGrams())
	}
}
