package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/guard"
)

var ErrResizeShelfCommandIsNotConstructed = errors.New(
	"ResizeShelfCommand must be created via NewResizeShelfCommand constructor",
)

// ResizeShelfCommand changes a shelf's dimensions and regenerates its bins with
// the given grid. Refused while any bin of the shelf holds inventory.
type ResizeShelfCommand struct {
	shelfID     kernel.UUID
	dimensions  kernel.Dimensions
	grid        location.Grid
	binCapacity location.Capacity

	guard guard.ConstructorGuard
}

func NewResizeShelfCommand(
	shelfID kernel.UUID,
	dimensions kernel.Dimensions,
	grid location.Grid,
	binCapacity location.Capacity,
) (ResizeShelfCommand, error) {
	if err := errors.Join(shelfID.Validate(), dimensions.Validate()); err != nil {
		return ResizeShelfCommand{}, err
	}
	if _, err := location.NewGrid(grid.Rows, grid.Cols, grid.Levels); err != nil {
		return ResizeShelfCommand{}, err
	}

	return ResizeShelfCommand{
		shelfID:     shelfID,
		dimensions:  dimensions,
		grid:        grid,
		binCapacity: binCapacity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ResizeShelfCommand) Validate() error {
	return c.guard.Validate(ErrResizeShelfCommandIsNotConstructed)
}

func (c ResizeShelfCommand) ShelfID() kernel.UUID { return c.shelfID }

func (c ResizeShelfCommand) Dimensions() kernel.Dimensions { return c.dimensions }

func (c ResizeShelfCommand) Grid() location.Grid { return c.grid }

func (c ResizeShelfCommand) BinCapacity() location.Capacity { return c.binCapacity }
