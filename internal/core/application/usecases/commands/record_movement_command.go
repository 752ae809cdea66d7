package commands

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordMovementCommandIsNotConstructed = errors.New(
	"RecordMovementCommand must be created via NewRecordMovementCommand constructor",
)

// RecordMovementCommand appends a completed transfer to the movement ledger.
// A nil sourceBinID marks an initial putaway.
type RecordMovementCommand struct {
	movementID  kernel.UUID
	productID   kernel.UUID
	quantity    decimal.Decimal
	sourceBinID *kernel.UUID
	destBinID   kernel.UUID
	kind        movement.Type
	occurredAt  time.Time
	orderRef    *kernel.UUID

	guard guard.ConstructorGuard
}

func NewRecordMovementCommand(
	productID kernel.UUID,
	quantity decimal.Decimal,
	sourceBinID *kernel.UUID,
	destBinID kernel.UUID,
	kind movement.Type,
	occurredAt time.Time,
	orderRef *kernel.UUID,
) (RecordMovementCommand, error) {
	errList := []error{productID.Validate(), destBinID.Validate(), kind.Validate()}
	if sourceBinID != nil {
		errList = append(errList, sourceBinID.Validate())
	}
	if orderRef != nil {
		errList = append(errList, orderRef.Validate())
	}
	if !quantity.IsPositive() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity.String(), "> 0", "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return RecordMovementCommand{}, err
	}

	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return RecordMovementCommand{
		movementID:  kernel.NewUUID(),
		productID:   productID,
		quantity:    quantity,
		sourceBinID: copyUUID(sourceBinID),
		destBinID:   destBinID,
		kind:        kind,
		occurredAt:  occurredAt,
		orderRef:    copyUUID(orderRef),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func copyUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func (c RecordMovementCommand) Validate() error {
	return c.guard.Validate(ErrRecordMovementCommandIsNotConstructed)
}

func (c RecordMovementCommand) MovementID() kernel.UUID { return c.movementID }

func (c RecordMovementCommand) ProductID() kernel.UUID { return c.productID }

func (c RecordMovementCommand) Quantity() decimal.Decimal { return c.quantity }

func (c RecordMovementCommand) SourceBinID() *kernel.UUID { return copyUUID(c.sourceBinID) }

func (c RecordMovementCommand) DestinationBinID() kernel.UUID { return c.destBinID }

func (c RecordMovementCommand) Type() movement.Type { return c.kind }

func (c RecordMovementCommand) OccurredAt() time.Time { return c.occurredAt }

func (c RecordMovementCommand) OrderRef() *kernel.UUID { return copyUUID(c.orderRef) }
