package stock

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrQuantIsNotConstructed = errors.New("Quant must be created via NewQuant constructor")

// Quant is one fact from the inventory ledger: a quantity of a product lot
// sitting in a bin. The engine never writes quants; it only reads them.
type Quant struct {
	binID      kernel.UUID
	productID  kernel.UUID
	lot        string
	expiresAt  *time.Time
	quantity   decimal.Decimal
	unitWeight decimal.Decimal
	guard      guard.ConstructorGuard
}

// NewQuant validates a ledger fact. Quantity and unit weight (kg) must not be negative;
// expiresAt is nil for products without lot expiry.
func NewQuant(
	binID, productID kernel.UUID,
	lot string,
	expiresAt *time.Time,
	quantity, unitWeight decimal.Decimal,
) (Quant, error) {
	var errList []error
	errList = append(errList, binID.Validate(), productID.Validate())
	if quantity.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity.String(), 0, "unbounded"))
	}
	if unitWeight.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("unitWeight", unitWeight.String(), 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return Quant{}, err
	}

	var expiry *time.Time
	if expiresAt != nil {
		e := expiresAt.UTC()
		expiry = &e
	}

	return Quant{
		binID:      binID,
		productID:  productID,
		lot:        lot,
		expiresAt:  expiry,
		quantity:   quantity,
		unitWeight: unitWeight,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q Quant) Validate() error {
	return q.guard.Validate(ErrQuantIsNotConstructed)
}

func (q Quant) BinID() kernel.UUID { return q.binID }

func (q Quant) ProductID() kernel.UUID { return q.productID }

func (q Quant) Lot() string { return q.lot }

func (q Quant) ExpiresAt() *time.Time {
	if q.expiresAt == nil {
		return nil
	}
	e := *q.expiresAt
	return &e
}

func (q Quant) Quantity() decimal.Decimal { return q.quantity }

func (q Quant) UnitWeight() decimal.Decimal { return q.unitWeight }

// Weight is quantity × unit weight.
func (q Quant) Weight() decimal.Decimal {
	return q.quantity.Mul(q.unitWeight)
}
