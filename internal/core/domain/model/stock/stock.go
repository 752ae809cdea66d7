package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock is the current content of one bin as reported by the inventory ledger.
type Stock []Quant

func (s Stock) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, q := range s {
		total = total.Add(q.quantity)
	}
	return total
}

func (s Stock) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, q := range s {
		total = total.Add(q.Weight())
	}
	return total
}

// EarliestExpiry is the soonest lot expiry among quants with a positive
// quantity, or nil if none of them expires.
func (s Stock) EarliestExpiry() *time.Time {
	var earliest *time.Time
	for _, q := range s {
		if q.expiresAt == nil || !q.quantity.IsPositive() {
			continue
		}
		if earliest == nil || q.expiresAt.Before(*earliest) {
			e := *q.expiresAt
			earliest = &e
		}
	}
	return earliest
}

// IsEmpty reports whether the bin holds nothing.
func (s Stock) IsEmpty() bool {
	return !s.TotalQuantity().IsPositive()
}
