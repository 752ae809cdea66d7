package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
)

// CreateShelfCommandHandler creates a shelf inside an area together with its bin grid.
type CreateShelfCommandHandler struct {
	uowFactory HierarchyUoWFactory
}

// NewCreateShelfCommandHandler creates the handler over a hierarchy unit of work factory.
func NewCreateShelfCommandHandler(uowFactory HierarchyUoWFactory) CreateShelfCommandHandler {
	return CreateShelfCommandHandler{uowFactory: uowFactory}
}

// Handle returns the ids of the generated bins in level, row, column order.
func (h CreateShelfCommandHandler) Handle(ctx context.Context, command CreateShelfCommand) ([]kernel.UUID, error) {
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
	area, err := repo.Get(ctx, command.AreaID())
	if err != nil {
		return nil, err
	}

	shelf, err := location.NewShelf(command.ShelfID(), area, command.Name(), command.Code(),
		command.Position(), command.Dimensions())
	if err != nil {
		return nil, err
	}

	var bins []*location.Location
	if grid := command.Grid(); grid != nil {
		if bins, err = location.GenerateGrid(shelf, *grid, command.BinCapacity()); err != nil {
			return nil, err
		}
	}

	if err = repo.Add(ctx, shelf); err != nil {
		return nil, err
	}
	if len(bins) > 0 {
		if err = repo.AddMany(ctx, bins); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids(bins), nil
}
