package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrDeleteLocationCommandIsNotConstructed = errors.New(
	"DeleteLocationCommand must be created via NewDeleteLocationCommand constructor",
)

// DeleteLocationCommand removes a location together with everything below it.
type DeleteLocationCommand struct {
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteLocationCommand(locationID kernel.UUID) (DeleteLocationCommand, error) {
	if err := locationID.Validate(); err != nil {
		return DeleteLocationCommand{}, err
	}
	return DeleteLocationCommand{locationID: locationID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteLocationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLocationCommandIsNotConstructed)
}

func (c DeleteLocationCommand) LocationID() kernel.UUID { return c.locationID }
