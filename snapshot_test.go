package bullion

import "testing"

func snapshotFixture() []Transaction {
	return []Transaction{
		purchase("P1", "2025-01-01", "Acme", 100, 6000),
		purchase("P2", "2025-01-10", "Bharat Refiners", 50, 6100),
		sale("S1", "2025-01-15", "Customer", 120, 750000),
		sale("S2", "2025-01-20", "Customer", 40, 260000), // stockout past the 30 g left
	}
}

func TestStockOn_MatchesLiveReplayAtLatestDate(t *testing.T) {
	txs := snapshotFixture()
	live := Replay(txs, ReplayOptions{})
	pos := StockOn(txs, MustParseDate("2025-01-20"), DefaultEpsilon)

	// Both walks implement the same consumption policy; equality here is a
	// contract, not an accident.
	if !pos.Grams.Equal(live.Stock) {
		t.Errorf("snapshot grams = %s, live stock = %s, must be equal", pos.Grams, live.Stock)
	}
	if !pos.Value.Equal(live.Value) {
		t.Errorf("snapshot value = %s, live value = %s, must be equal", pos.Value, live.Value)
	}
}

func TestStockOn_Cutoffs(t *testing.T) {
	txs := snapshotFixture()

	t.Run("before inception", func(t *testing.T) {
		pos := StockOn(txs, MustParseDate("2024-12-31"), DefaultEpsilon)
		if !pos.Grams.IsZero() || !pos.Value.IsZero() {
			t.Errorf("got %s g / %s before any transaction, want zero", pos.Grams, pos.Value)
		}
	})

	t.Run("end of purchase day includes the purchase", func(t *testing.T) {
		pos := StockOn(txs, MustParseDate("2025-01-01"), DefaultEpsilon)
		if !pos.Grams.Equal(Q(100)) {
			t.Errorf("grams = %s, want 100", pos.Grams)
		}
		if !pos.Value.Equal(INR(600000)) {
			t.Errorf("value = %s, want 600000", pos.Value)
		}
	})

	t.Run("mid-history after first sale", func(t *testing.T) {
		// 150 g bought, 120 g sold FIFO: 100 from P1, 20 from P2.
		pos := StockOn(txs, MustParseDate("2025-01-15"), DefaultEpsilon)
		if !pos.Grams.Equal(Q(30)) {
			t.Errorf("grams = %s, want 30", pos.Grams)
		}
		if !pos.Value.Equal(INR(183000)) { // 30 g left of P2 @ 6100
			t.Errorf("value = %s, want 183000", pos.Value)
		}
	})

	t.Run("overselling clamps grams to zero", func(t *testing.T) {
		pos := StockOn(txs, MustParseDate("2025-01-20"), DefaultEpsilon)
		if !pos.Grams.Equal(Q(0)) {
			t.Errorf("grams = %s, want 0 (clamped only in the final figure)", pos.Grams)
		}
		if !pos.Value.IsZero() {
			t.Errorf("value = %s, want 0", pos.Value)
		}
	})
}
