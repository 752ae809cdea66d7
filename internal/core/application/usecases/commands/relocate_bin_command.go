package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrRelocateBinCommandIsNotConstructed = errors.New(
	"RelocateBinCommand must be created via NewRelocateBinCommand constructor",
)

// RelocateBinCommand moves, resizes or re-parents a bin. A nil newShelfID keeps
// the bin on its current shelf.
type RelocateBinCommand struct {
	binID      kernel.UUID
	newShelfID *kernel.UUID
	position   kernel.Position
	dimensions kernel.Dimensions

	guard guard.ConstructorGuard
}

func NewRelocateBinCommand(
	binID kernel.UUID,
	newShelfID *kernel.UUID,
	position kernel.Position,
	dimensions kernel.Dimensions,
) (RelocateBinCommand, error) {
	errList := []error{binID.Validate(), position.Validate(), dimensions.Validate()}
	if newShelfID != nil {
		errList = append(errList, newShelfID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return RelocateBinCommand{}, err
	}

	var shelfID *kernel.UUID
	if newShelfID != nil {
		id := *newShelfID
		shelfID = &id
	}

	return RelocateBinCommand{
		binID:      binID,
		newShelfID: shelfID,
		position:   position,
		dimensions: dimensions,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RelocateBinCommand) Validate() error {
	return c.guard.Validate(ErrRelocateBinCommandIsNotConstructed)
}

func (c RelocateBinCommand) BinID() kernel.UUID { return c.binID }

func (c RelocateBinCommand) NewShelfID() *kernel.UUID { return c.newShelfID }

func (c RelocateBinCommand) Position() kernel.Position { return c.position }

func (c RelocateBinCommand) Dimensions() kernel.Dimensions { return c.dimensions }
