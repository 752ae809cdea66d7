package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
)

// RelocateBinCommandHandler applies a structural change to a bin. The bin row
// is locked for the transaction; the change is refused if the bin holds inventory.
type RelocateBinCommandHandler struct {
	uowFactory HierarchyUoWFactory
}

// NewRelocateBinCommandHandler creates the handler over a hierarchy unit of work factory.
func NewRelocateBinCommandHandler(uowFactory HierarchyUoWFactory) RelocateBinCommandHandler {
	return RelocateBinCommandHandler{uowFactory: uowFactory}
}

// Handle moves, resizes or reparents the bin. A bin with stock fails with
// location.ErrBinLocked.
func (h RelocateBinCommandHandler) Handle(ctx context.Context, command RelocateBinCommand) error {
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

	repo := uow.LocationRepository()
	bin, err := repo.GetForUpdate(ctx, command.BinID())
	if err != nil {
		return err
	}
	currentShelf, err := parentOf(ctx, repo, bin)
	if err != nil {
		return err
	}

	var newShelf *location.Location
	if id := command.NewShelfID(); id != nil {
		newShelf, err = repo.Get(ctx, *id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: target shelf %s does not exist", location.ErrInvalidHierarchy, *id)
		}
		if err != nil {
			return err
		}
	}

	locked, err := lockedBins(ctx, uow.StockLedger(), []*location.Location{bin})
	if err != nil {
		return err
	}

	if err = bin.Relocate(currentShelf, newShelf, command.Position(), command.Dimensions(), len(locked) > 0); err != nil {
		return err
	}

	if err = repo.Update(ctx, bin); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
