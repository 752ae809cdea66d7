package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

// CreateZoneCommand adds a picking zone to a layout. The footprint is the floor
// rectangle at origin with the given width and depth; reference is where a
// picker enters the zone.
type CreateZoneCommand struct {
	zoneID    kernel.UUID
	layoutID  kernel.UUID
	name      string
	sequence  int
	origin    kernel.Position
	width     float64
	depth     float64
	reference kernel.Position

	guard guard.ConstructorGuard
}

func NewCreateZoneCommand(
	layoutID kernel.UUID,
	name string,
	sequence int,
	origin kernel.Position,
	width, depth float64,
	reference kernel.Position,
) (CreateZoneCommand, error) {
	var errList []error
	errList = append(errList, layoutID.Validate(), origin.Validate(), reference.Validate())
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if sequence < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("sequence", sequence, 0, "unbounded"))
	}
	if !(width > 0) || !(depth > 0) {
		errList = append(errList, errs.NewValueIsInvalidError("zone extent"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateZoneCommand{}, err
	}

	return CreateZoneCommand{
		zoneID:    kernel.NewUUID(),
		layoutID:  layoutID,
		name:      name,
		sequence:  sequence,
		origin:    origin,
		width:     width,
		depth:     depth,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

func (c CreateZoneCommand) ZoneID() kernel.UUID { return c.zoneID }

func (c CreateZoneCommand) LayoutID() kernel.UUID { return c.layoutID }

func (c CreateZoneCommand) Name() string { return c.name }

func (c CreateZoneCommand) Sequence() int { return c.sequence }

func (c CreateZoneCommand) Origin() kernel.Position { return c.origin }

func (c CreateZoneCommand) Width() float64 { return c.width }

func (c CreateZoneCommand) Depth() float64 { return c.depth }

func (c CreateZoneCommand) Reference() kernel.Position { return c.reference }
