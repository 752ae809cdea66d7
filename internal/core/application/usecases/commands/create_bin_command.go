package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateBinCommandIsNotConstructed = errors.New(
	"CreateBinCommand must be created via NewCreateBinCommand constructor",
)

// CreateBinCommand adds a single bin to a shelf.
type CreateBinCommand struct {
	binID      kernel.UUID
	shelfID    kernel.UUID
	name       string
	code       string
	position   kernel.Position
	dimensions kernel.Dimensions
	capacity   location.Capacity

	guard guard.ConstructorGuard
}

func NewCreateBinCommand(
	shelfID kernel.UUID,
	name, code string,
	position kernel.Position,
	dimensions kernel.Dimensions,
	capacity location.Capacity,
) (CreateBinCommand, error) {
	var errList []error
	errList = append(errList, shelfID.Validate(), position.Validate(), dimensions.Validate())
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(code) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("code"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateBinCommand{}, err
	}

	return CreateBinCommand{
		binID:      kernel.NewUUID(),
		shelfID:    shelfID,
		name:       name,
		code:       code,
		position:   position,
		dimensions: dimensions,
		capacity:   capacity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBinCommand) Validate() error {
	return c.guard.Validate(ErrCreateBinCommandIsNotConstructed)
}

func (c CreateBinCommand) BinID() kernel.UUID { return c.binID }

func (c CreateBinCommand) ShelfID() kernel.UUID { return c.shelfID }

func (c CreateBinCommand) Name() string { return c.name }

func (c CreateBinCommand) Code() string { return c.code }

func (c CreateBinCommand) Position() kernel.Position { return c.position }

func (c CreateBinCommand) Dimensions() kernel.Dimensions { return c.dimensions }

func (c CreateBinCommand) Capacity() location.Capacity { return c.capacity }
