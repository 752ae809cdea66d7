package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	DefaultBinsLimit = 500
	MaxBinsLimit     = 5000
)

var ErrGetBinsQueryIsNotConstructed = errors.New(
	"GetBinsQuery must be created via NewGetBinsQuery constructor",
)

// GetBinsQuery lists the bins of a layout with their derived state. A zero
// limit means DefaultBinsLimit.
type GetBinsQuery struct {
	layoutID kernel.UUID
	limit    int

	guard guard.ConstructorGuard
}

func NewGetBinsQuery(layoutID kernel.UUID, limit int) (GetBinsQuery, error) {
	if err := layoutID.Validate(); err != nil {
		return GetBinsQuery{}, err
	}
	if limit == 0 {
		limit = DefaultBinsLimit
	}
	if limit < 1 || limit > MaxBinsLimit {
		return GetBinsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxBinsLimit)
	}
	return GetBinsQuery{layoutID: layoutID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBinsQuery) Validate() error {
	return q.guard.Validate(ErrGetBinsQueryIsNotConstructed)
}

func (q GetBinsQuery) LayoutID() kernel.UUID { return q.layoutID }

func (q GetBinsQuery) Limit() int { return q.limit }

type BinView struct {
	ID             kernel.UUID
	Name           string
	Code           string
	Position       kernel.Position
	Dimensions     kernel.Dimensions
	Status         location.Status
	Locked         bool
	Quantity       decimal.Decimal
	Weight         decimal.Decimal
	UtilizationPct float64
}

// GetBinsQueryResponse holds at most limit bins; TotalCount is the number of
// bins on the layout.
type GetBinsQueryResponse struct {
	Bins       []BinView
	TotalCount int
	Truncated  bool
}
