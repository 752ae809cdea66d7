package commands

import (
	"context"
	"fmt"

	"warehouse/internal/core/domain/model/location"
)

// CreateAreaCommandHandler adds an area that must fit on the layout floor.
type CreateAreaCommandHandler struct {
	uowFactory LayoutUoWFactory
}

// NewCreateAreaCommandHandler creates the handler over a layout unit of work factory.
func NewCreateAreaCommandHandler(uowFactory LayoutUoWFactory) CreateAreaCommandHandler {
	return CreateAreaCommandHandler{uowFactory: uowFactory}
}

// Handle loads the layout, checks the area box lies inside the floor box and stores the area.
// Returns location.ErrOutOfBounds when it does not fit.
func (h CreateAreaCommandHandler) Handle(ctx context.Context, command CreateAreaCommand) error {
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

	floor, err := uow.LayoutRepository().Get(ctx, command.LayoutID())
	if err != nil {
		return err
	}

	area, err := location.NewArea(command.AreaID(), floor.ID(), command.Name(), command.Code(),
		command.Position(), command.Dimensions())
	if err != nil {
		return err
	}
	if !floor.Box().Contains(area.Box()) {
		return fmt.Errorf("%w: area %s %s exceeds layout %s", location.ErrOutOfBounds,
			area.Code(), area.Box(), floor.Box())
	}

	if err = uow.LocationRepository().Add(ctx, area); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
