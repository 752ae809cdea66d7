package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateLayoutCommandIsNotConstructed = errors.New(
	"CreateLayoutCommand must be created via NewCreateLayoutCommand constructor",
)

// CreateLayoutCommand registers a new warehouse floor.
//
// Example:
//
//	floor, _ := kernel.NewDimensions(60, 40, 10)
//	cmd, err := NewCreateLayoutCommand("Main DC", floor)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	fmt.Println("layout", cmd.LayoutID())
type CreateLayoutCommand struct { //nolint:recvcheck //using for validation
	layoutID   kernel.UUID
	name       string
	dimensions kernel.Dimensions

	guard guard.ConstructorGuard
}

func NewCreateLayoutCommand(name string, dimensions kernel.Dimensions) (CreateLayoutCommand, error) {
	command := CreateLayoutCommand{layoutID: kernel.NewUUID(), guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		command.setName(name),
		command.setDimensions(dimensions),
	); err != nil {
		return CreateLayoutCommand{}, err
	}

	return command, nil
}

func (c CreateLayoutCommand) Validate() error {
	return c.guard.Validate(ErrCreateLayoutCommandIsNotConstructed)
}

func (c CreateLayoutCommand) LayoutID() kernel.UUID { return c.layoutID }

func (c CreateLayoutCommand) Name() string { return c.name }

func (c CreateLayoutCommand) Dimensions() kernel.Dimensions { return c.dimensions }

func (c *CreateLayoutCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateLayoutCommand) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	c.dimensions = dimensions
	return nil
}
