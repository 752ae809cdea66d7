package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// PickFrequencyWindow is the look-back of GetBinStockQueryResponse.PickFrequency30d.
const PickFrequencyWindow = 30 * 24 * time.Hour

var ErrGetBinStockQueryIsNotConstructed = errors.New(
	"GetBinStockQuery must be created via NewGetBinStockQuery constructor",
)

type GetBinStockQuery struct {
	binID kernel.UUID
	asOf  time.Time

	guard guard.ConstructorGuard
}

// NewGetBinStockQuery reads a bin's content and pick activity as of asOf
// (now when zero).
func NewGetBinStockQuery(binID kernel.UUID, asOf time.Time) (GetBinStockQuery, error) {
	if err := binID.Validate(); err != nil {
		return GetBinStockQuery{}, err
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}
	return GetBinStockQuery{binID: binID, asOf: asOf.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetBinStockQuery) Validate() error {
	return q.guard.Validate(ErrGetBinStockQueryIsNotConstructed)
}

func (q GetBinStockQuery) BinID() kernel.UUID { return q.binID }

func (q GetBinStockQuery) AsOf() time.Time { return q.asOf }

type QuantView struct {
	ProductID kernel.UUID
	Lot       string
	ExpiresAt *time.Time
	Quantity  decimal.Decimal
	Weight    decimal.Decimal
}

type GetBinStockQueryResponse struct {
	BinID            kernel.UUID
	Code             string
	Status           location.Status
	Locked           bool
	Quantity         decimal.Decimal
	Weight           decimal.Decimal
	UtilizationPct   float64
	PickFrequency30d int
	LastPicked       *time.Time
	Contents         []QuantView
}
