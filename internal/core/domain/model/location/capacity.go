package location

import (
	"errors"

	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Capacity is the load limit of a bin: maximum weight in kilograms and
// maximum number of items. A zero limit means "not tracked".
type Capacity struct {
	maxWeight decimal.Decimal
	maxItems  int64
}

// NewCapacity rejects negative limits. Both limits may be zero.
func NewCapacity(maxWeight decimal.Decimal, maxItems int64) (Capacity, error) {
	var errList []error
	if maxWeight.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("maxWeight", maxWeight.String(), 0, "unbounded"))
	}
	if maxItems < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("maxItems", maxItems, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return Capacity{}, err
	}

	return Capacity{maxWeight: maxWeight, maxItems: maxItems}, nil
}

// MaxWeight is in kilograms; zero means no weight limit.
func (c Capacity) MaxWeight() decimal.Decimal { return c.maxWeight }

// MaxItems is zero when the item count is not tracked.
func (c Capacity) MaxItems() int64 { return c.maxItems }
