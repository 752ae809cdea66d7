// Package stock holds the read-only inventory facts (quants) the engine
// consumes from the external inventory ledger, plus per-bin totals.
package stock
