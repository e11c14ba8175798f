package bullion

import (
	"slices"
	"strings"
)

// CompareTransactions is the total order every chronological walk in this
// package must use.
//
// The key, in priority order:
//  1. calendar date (ISO string comparison),
//  2. creation timestamp, only when both records carry one; a pair with a
//     missing timestamp skips this tier entirely,
//  3. ID as the final tie-break.
func CompareTransactions(a, b Transaction) int {
	if c := strings.Compare(a.Date.String(), b.Date.String()); c != 0 {
		return c
	}
	if a.CreatedAt != "" && b.CreatedAt != "" {
		if c := strings.Compare(a.CreatedAt, b.CreatedAt); c != 0 {
			return c
		}
	}
	return strings.Compare(a.ID, b.ID)
}

// SortTransactions returns a copy of txs sorted by CompareTransactions.
// The input slice is never reordered in place: callers own their collection.
func SortTransactions(txs []Transaction) []Transaction {
	out := slices.Clone(txs)
	slices.SortStableFunc(out, CompareTransactions)
	return out
}
