package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// RecordMovementCommandHandler locks the bins involved and appends the movement.
// Two concurrent movements into the same bin serialise on the row lock. Source
// and destination are locked in id order, so opposing transfers between the
// same two bins queue up instead of deadlocking.
//
// Example:
//
//	handler := NewRecordMovementCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
type RecordMovementCommandHandler struct {
	uowFactory MovementUoWFactory
}

// NewRecordMovementCommandHandler builds the handler over a movement unit of work factory.
func NewRecordMovementCommandHandler(uowFactory MovementUoWFactory) RecordMovementCommandHandler {
	return RecordMovementCommandHandler{uowFactory: uowFactory}
}

// Handle validates the movement against the locked bins and stores it.
func (h RecordMovementCommandHandler) Handle(ctx context.Context, command RecordMovementCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	source, dest, err := lockMovementBins(ctx, uow.LocationRepository(), command.SourceBinID(), command.DestinationBinID())
	if err != nil {
		return err
	}

	m, err := movement.NewBinMovement(command.MovementID(), command.ProductID(), command.Quantity(),
		source, dest, command.Type(), command.OccurredAt(), command.OrderRef())
	if err != nil {
		return err
	}

	if err = uow.MovementRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// lockMovementBins takes the row locks of source (when present) and
// destination, lowest id first. A movement within one bin locks it once.
func lockMovementBins(
	ctx context.Context,
	repo ports.LocationRepository,
	sourceID *kernel.UUID,
	destID kernel.UUID,
) (source, dest *location.Location, err error) {
	if sourceID == nil {
		dest, err = lockBin(ctx, repo, destID, "destination")
		return nil, dest, err
	}
	if sourceID.IsEqual(destID) {
		if source, err = lockBin(ctx, repo, destID, "source"); err != nil {
			return nil, nil, err
		}
		return source, source, nil
	}

	if destID.Less(*sourceID) {
		if dest, err = lockBin(ctx, repo, destID, "destination"); err != nil {
			return nil, nil, err
		}
		source, err = lockBin(ctx, repo, *sourceID, "source")
	} else {
		if source, err = lockBin(ctx, repo, *sourceID, "source"); err != nil {
			return nil, nil, err
		}
		dest, err = lockBin(ctx, repo, destID, "destination")
	}
	if err != nil {
		return nil, nil, err
	}
	return source, dest, nil
}

func lockBin(ctx context.Context, repo ports.LocationRepository, id kernel.UUID, role string) (*location.Location, error) {
	bin, err := repo.GetForUpdate(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %s bin %s does not exist", location.ErrInvalidHierarchy, role, id)
	}
	return bin, err
}
