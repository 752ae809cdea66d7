// Package movement contains the append-only bin movement ledger entry.
//
// A BinMovement is created once, when a transfer completes, and never changes
// afterwards. The travelled distance is derived from the bins' positions at
// the time of recording.
package movement
