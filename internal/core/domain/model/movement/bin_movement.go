package movement

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrBinMovementIsNotConstructed = errors.New("BinMovement must be created via NewBinMovement constructor")

// BinMovement is an immutable ledger entry recording a quantity of a product
// moving into a destination bin, optionally out of a source bin.
type BinMovement struct {
	id          kernel.UUID
	layoutID    kernel.UUID
	productID   kernel.UUID
	quantity    decimal.Decimal
	sourceBinID *kernel.UUID
	destBinID   kernel.UUID
	kind        Type
	occurredAt  time.Time
	distance    float64
	orderRef    *kernel.UUID
	guard       guard.ConstructorGuard
}

// NewBinMovement records a movement between two bins of the same layout.
// The distance travelled is derived from the bin positions and is 0 when
// source is nil.
func NewBinMovement(
	id kernel.UUID,
	productID kernel.UUID,
	quantity decimal.Decimal,
	source *location.Location,
	dest *location.Location,
	kind Type,
	occurredAt time.Time,
	orderRef *kernel.UUID,
) (*BinMovement, error) {
	if err := errors.Join(id.Validate(), productID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}
	if !quantity.IsPositive() {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity.String(), "> 0", "unbounded")
	}
	if occurredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("occurredAt")
	}
	if orderRef != nil {
		if err := orderRef.Validate(); err != nil {
			return nil, err
		}
	}

	if err := checkBin("destination", dest); err != nil {
		return nil, err
	}

	m := &BinMovement{
		id:         id,
		layoutID:   dest.LayoutID(),
		productID:  productID,
		quantity:   quantity,
		destBinID:  dest.ID(),
		kind:       kind,
		occurredAt: occurredAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	switch {
	case source == nil && !kind.AllowsMissingSource():
		return nil, errs.NewValueIsRequiredErrorWithCause("source bin",
			fmt.Errorf("%s movements must name the bin they leave", kind))
	case source != nil:
		if err := checkBin("source", source); err != nil {
			return nil, err
		}
		if !source.LayoutID().IsEqual(dest.LayoutID()) {
			return nil, fmt.Errorf("%w: source bin %s and destination bin %s are on different layouts",
				location.ErrInvalidHierarchy, source.Code(), dest.Code())
		}
		sourceID := source.ID()
		m.sourceBinID = &sourceID
		m.distance = source.Position().Distance(dest.Position())
	}

	if orderRef != nil {
		ref := *orderRef
		m.orderRef = &ref
	}

	return m, nil
}

// RestoreBinMovement rebuilds a stored ledger entry without reloading the bins.
func RestoreBinMovement(
	id, layoutID, productID kernel.UUID,
	quantity decimal.Decimal,
	sourceBinID *kernel.UUID,
	destBinID kernel.UUID,
	kind Type,
	occurredAt time.Time,
	distance float64,
	orderRef *kernel.UUID,
) (*BinMovement, error) {
	if err := errors.Join(
		id.Validate(),
		layoutID.Validate(),
		productID.Validate(),
		destBinID.Validate(),
		kind.Validate(),
	); err != nil {
		return nil, err
	}
	if distance < 0 {
		return nil, errs.NewValueIsOutOfRangeError("distance", distance, 0, "unbounded")
	}

	return &BinMovement{
		id:          id,
		layoutID:    layoutID,
		productID:   productID,
		quantity:    quantity,
		sourceBinID: copyID(sourceBinID),
		destBinID:   destBinID,
		kind:        kind,
		occurredAt:  occurredAt.UTC(),
		distance:    distance,
		orderRef:    copyID(orderRef),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func checkBin(role string, l *location.Location) error {
	if l == nil || l.Validate() != nil {
		return fmt.Errorf("%w: %s bin is required", location.ErrInvalidHierarchy, role)
	}
	if !l.IsBin() {
		return fmt.Errorf("%w: %s %s is a %s, not a bin", location.ErrInvalidHierarchy, role, l.Code(), l.Kind())
	}
	return nil
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func (m *BinMovement) Validate() error {
	if m == nil {
		return ErrBinMovementIsNotConstructed
	}
	return m.guard.Validate(ErrBinMovementIsNotConstructed)
}

// ID returns the movement identifier.
func (m *BinMovement) ID() kernel.UUID { return m.id }

// LayoutID is the layout of the destination bin.
func (m *BinMovement) LayoutID() kernel.UUID { return m.layoutID }

func (m *BinMovement) ProductID() kernel.UUID { return m.productID }

// Quantity is always positive.
func (m *BinMovement) Quantity() decimal.Decimal { return m.quantity }

// SourceBinID is nil for an initial putaway.
func (m *BinMovement) SourceBinID() *kernel.UUID { return copyID(m.sourceBinID) }

// DestinationBinID is the bin the goods arrived in.
func (m *BinMovement) DestinationBinID() kernel.UUID { return m.destBinID }

func (m *BinMovement) Type() Type { return m.kind }

// OccurredAt is stored in UTC.
func (m *BinMovement) OccurredAt() time.Time { return m.occurredAt }

// Distance is the straight-line distance between the two bins, in metres.
func (m *BinMovement) Distance() float64 { return m.distance }

// OrderRef links a pick to the order it served; nil for other movements.
func (m *BinMovement) OrderRef() *kernel.UUID { return copyID(m.orderRef) }
