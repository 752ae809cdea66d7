package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateShelfCommandIsNotConstructed = errors.New(
	"CreateShelfCommand must be created via NewCreateShelfCommand constructor",
)

// CreateShelfCommand adds a shelf to an area and, when a grid is given,
// partitions it into rows × cols × levels bins sharing binCapacity.
type CreateShelfCommand struct {
	shelfID     kernel.UUID
	areaID      kernel.UUID
	name        string
	code        string
	position    kernel.Position
	dimensions  kernel.Dimensions
	grid        *location.Grid
	binCapacity location.Capacity

	guard guard.ConstructorGuard
}

func NewCreateShelfCommand(
	areaID kernel.UUID,
	name, code string,
	position kernel.Position,
	dimensions kernel.Dimensions,
	grid *location.Grid,
	binCapacity location.Capacity,
) (CreateShelfCommand, error) {
	var errList []error
	errList = append(errList, areaID.Validate(), position.Validate(), dimensions.Validate())
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(code) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("code"))
	}
	if grid != nil {
		if _, err := location.NewGrid(grid.Rows, grid.Cols, grid.Levels); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return CreateShelfCommand{}, err
	}

	var g *location.Grid
	if grid != nil {
		copied := *grid
		g = &copied
	}

	return CreateShelfCommand{
		shelfID:     kernel.NewUUID(),
		areaID:      areaID,
		name:        name,
		code:        code,
		position:    position,
		dimensions:  dimensions,
		grid:        g,
		binCapacity: binCapacity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShelfCommand) Validate() error {
	return c.guard.Validate(ErrCreateShelfCommandIsNotConstructed)
}

func (c CreateShelfCommand) ShelfID() kernel.UUID { return c.shelfID }

func (c CreateShelfCommand) AreaID() kernel.UUID { return c.areaID }

func (c CreateShelfCommand) Name() string { return c.name }

func (c CreateShelfCommand) Code() string { return c.code }

func (c CreateShelfCommand) Position() kernel.Position { return c.position }

func (c CreateShelfCommand) Dimensions() kernel.Dimensions { return c.dimensions }

// Grid is nil when the shelf is created without bins.
func (c CreateShelfCommand) Grid() *location.Grid { return c.grid }

func (c CreateShelfCommand) BinCapacity() location.Capacity { return c.binCapacity }
