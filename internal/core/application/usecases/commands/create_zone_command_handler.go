package commands

import (
	"context"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/location"
)

// CreateZoneCommandHandler adds a zone whose footprint lies on the layout floor.
type CreateZoneCommandHandler struct {
	uowFactory LayoutUoWFactory
}

// NewCreateZoneCommandHandler creates the handler over a layout unit of work factory.
func NewCreateZoneCommandHandler(uowFactory LayoutUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{uowFactory: uowFactory}
}

// Handle stores the zone once its footprint is known to lie on the layout floor.
func (h CreateZoneCommandHandler) Handle(ctx context.Context, command CreateZoneCommand) error {
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

	layouts := uow.LayoutRepository()
	floor, err := layouts.Get(ctx, command.LayoutID())
	if err != nil {
		return err
	}

	// Zones span the full layout height; only their floor rectangle matters.
	extent, err := kernel.NewDimensions(command.Width(), command.Depth(), floor.Dimensions().Height())
	if err != nil {
		return err
	}

	zone, err := layout.NewZone(command.ZoneID(), floor.ID(), command.Name(), command.Sequence(),
		command.Origin(), extent, command.Reference())
	if err != nil {
		return err
	}
	if !floor.Box().Contains(zone.Footprint()) {
		return fmt.Errorf("%w: zone %s %s exceeds layout %s", location.ErrOutOfBounds,
			zone.Name(), zone.Footprint(), floor.Box())
	}

	if err = layouts.AddZone(ctx, zone); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
