package services

import (
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/stock"

	"github.com/shopspring/decimal"
)

// FullThreshold is the share of a bin's max weight at which it counts as full.
var FullThreshold = decimal.RequireFromString("0.9")

var hundred = decimal.NewFromInt(100)

// BinState is everything derived about a bin from its ledger facts.
type BinState struct {
	Status         location.Status
	Locked         bool
	Quantity       decimal.Decimal
	Weight         decimal.Decimal
	UtilizationPct float64
}

// BinStateEngine derives status, lock state and utilisation of a bin.
// Nothing here is stored; callers recompute on every read.
type BinStateEngine struct{}

// NewBinStateEngine creates a stateless BinStateEngine.
func NewBinStateEngine() BinStateEngine {
	return BinStateEngine{}
}

// DeriveStatus applies, in order: blocked, empty, full (weight ≥ 90% of max
// weight when a max weight is set), available.
func (BinStateEngine) DeriveStatus(bin *location.Location, content stock.Stock) location.Status {
	if bin.IsBlocked() {
		return location.Blocked
	}
	if content.IsEmpty() {
		return location.Empty
	}

	maxWeight := bin.Capacity().MaxWeight()
	if maxWeight.IsPositive() && content.TotalWeight().GreaterThanOrEqual(maxWeight.Mul(FullThreshold)) {
		return location.Full
	}
	return location.Available
}

// IsLocked reports whether the bin holds inventory. A locked bin's position,
// dimensions and parent are frozen.
func (BinStateEngine) IsLocked(content stock.Stock) bool {
	return content.TotalQuantity().IsPositive()
}

// Utilization is weight / max weight × 100, or 0 for bins without a weight limit.
func (BinStateEngine) Utilization(bin *location.Location, content stock.Stock) float64 {
	maxWeight := bin.Capacity().MaxWeight()
	if !maxWeight.IsPositive() {
		return 0
	}
	return content.TotalWeight().Div(maxWeight).Mul(hundred).InexactFloat64()
}

// Derive computes every derived fact of a bin in one pass.
//
// Example:
//
//	state := services.NewBinStateEngine().Derive(bin, content)
//	if state.Locked {
//	    return location.ErrBinLocked
//	}
func (e BinStateEngine) Derive(bin *location.Location, content stock.Stock) BinState {
	return BinState{
		Status:         e.DeriveStatus(bin, content),
		Locked:         e.IsLocked(content),
		Quantity:       content.TotalQuantity(),
		Weight:         content.TotalWeight(),
		UtilizationPct: e.Utilization(bin, content),
	}
}
