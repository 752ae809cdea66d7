package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
)

// ResizeShelfCommandHandler resizes a shelf and replaces its bins with a fresh grid.
type ResizeShelfCommandHandler struct {
	uowFactory HierarchyUoWFactory
}

// NewResizeShelfCommandHandler creates the handler over a hierarchy unit of work factory.
func NewResizeShelfCommandHandler(uowFactory HierarchyUoWFactory) ResizeShelfCommandHandler {
	return ResizeShelfCommandHandler{uowFactory: uowFactory}
}

// Handle returns the ids of the regenerated bins.
func (h ResizeShelfCommandHandler) Handle(ctx context.Context, command ResizeShelfCommand) ([]kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LocationRepository()
	shelf, err := repo.GetForUpdate(ctx, command.ShelfID())
	if err != nil {
		return nil, err
	}
	area, err := parentOf(ctx, repo, shelf)
	if err != nil {
		return nil, err
	}

	oldBins, err := repo.GetDescendants(ctx, shelf.ID())
	if err != nil {
		return nil, err
	}
	locked, err := lockedBins(ctx, uow.StockLedger(), oldBins)
	if err != nil {
		return nil, err
	}

	if err = shelf.ResizeShelf(area, command.Dimensions(), len(locked) > 0); err != nil {
		return nil, err
	}
	bins, err := location.GenerateGrid(shelf, command.Grid(), command.BinCapacity())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, shelf); err != nil {
		return nil, err
	}
	if len(oldBins) > 0 {
		if err = repo.Delete(ctx, ids(oldBins)); err != nil {
			return nil, err
		}
	}
	if err = repo.AddMany(ctx, bins); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids(bins), nil
}
