package commands

import (
	"context"

	"warehouse/internal/core/domain/model/location"
)

// DeleteLocationCommandHandler deletes a location subtree. It fails with
// location.ErrNotEmpty while any bin in the subtree holds inventory.
type DeleteLocationCommandHandler struct {
	uowFactory HierarchyUoWFactory
}

// NewDeleteLocationCommandHandler creates the handler over a hierarchy unit of work factory.
func NewDeleteLocationCommandHandler(uowFactory HierarchyUoWFactory) DeleteLocationCommandHandler {
	return DeleteLocationCommandHandler{uowFactory: uowFactory}
}

// Handle locks the node, collects its descendants and removes the whole subtree
// in one statement. Nothing is deleted when a bin below the node holds stock.
func (h DeleteLocationCommandHandler) Handle(ctx context.Context, command DeleteLocationCommand) error {
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
	node, err := repo.GetForUpdate(ctx, command.LocationID())
	if err != nil {
		return err
	}
	descendants, err := repo.GetDescendants(ctx, node.ID())
	if err != nil {
		return err
	}

	subtree := append([]*location.Location{node}, descendants...)
	locked, err := lockedBins(ctx, uow.StockLedger(), subtree)
	if err != nil {
		return err
	}
	if err = node.EnsureDeletable(locked); err != nil {
		return err
	}

	if err = repo.Delete(ctx, ids(subtree)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
