package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateAreaCommandIsNotConstructed = errors.New(
	"CreateAreaCommand must be created via NewCreateAreaCommand constructor",
)

// CreateAreaCommand adds a top-level area to a layout.
type CreateAreaCommand struct {
	areaID     kernel.UUID
	layoutID   kernel.UUID
	name       string
	code       string
	position   kernel.Position
	dimensions kernel.Dimensions

	guard guard.ConstructorGuard
}

func NewCreateAreaCommand(
	layoutID kernel.UUID,
	name, code string,
	position kernel.Position,
	dimensions kernel.Dimensions,
) (CreateAreaCommand, error) {
	var errList []error
	errList = append(errList, layoutID.Validate(), position.Validate(), dimensions.Validate())
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(code) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("code"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateAreaCommand{}, err
	}

	return CreateAreaCommand{
		areaID:     kernel.NewUUID(),
		layoutID:   layoutID,
		name:       name,
		code:       code,
		position:   position,
		dimensions: dimensions,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAreaCommand) Validate() error {
	return c.guard.Validate(ErrCreateAreaCommandIsNotConstructed)
}

func (c CreateAreaCommand) AreaID() kernel.UUID { return c.areaID }

func (c CreateAreaCommand) LayoutID() kernel.UUID { return c.layoutID }

func (c CreateAreaCommand) Name() string { return c.name }

func (c CreateAreaCommand) Code() string { return c.code }

func (c CreateAreaCommand) Position() kernel.Position { return c.position }

func (c CreateAreaCommand) Dimensions() kernel.Dimensions { return c.dimensions }
