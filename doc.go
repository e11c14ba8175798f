// Package bullion implements a transaction ledger and FIFO valuation engine
// for a precious-metal stock book.
//
// The package is a pure, in-memory computation library. It takes an unordered
// collection of purchase and sale transactions and derives from it:
//
//   - a live batch-level inventory state, with cost of goods sold and profit
//     attached to every sale (the replay engine),
//   - point-in-time historical stock snapshots by bounded replay,
//   - aggregate analytics (aging buckets, supplier statistics, turnover),
//   - a self-consistency audit that recomputes stock independently of the
//     replay engine to surface divergences.
//
// Nothing in the core persists data or talks to the network; the JSONL codec
// and the spot-price provider are boundary collaborators for the surrounding
// command line application in gold/ and cmd/.
//
// All quantities and amounts are exact decimals. Problems in the business
// data (overselling, missing creation timestamps, blank fields) surface as
// data: trace lines on the replay output and issue strings on the audit
// report. No function in the core ever rejects a transaction.
package bullion
