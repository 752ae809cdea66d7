package layout

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

// Zone is a floor region pickers walk as a unit. Zones are visited in ascending
// Sequence; inside a zone a picker starts at the zone's Reference point.
type Zone struct {
	id        kernel.UUID
	layoutID  kernel.UUID
	name      string
	sequence  int
	footprint kernel.Box
	reference kernel.Position
	guard     guard.ConstructorGuard
}

// NewZone creates a zone whose footprint is the floor rectangle at origin with
// the given extent. The reference point must lie inside the footprint.
func NewZone(
	id kernel.UUID,
	layoutID kernel.UUID,
	name string,
	sequence int,
	origin kernel.Position,
	extent kernel.Dimensions,
	reference kernel.Position,
) (*Zone, error) {
	z := &Zone{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		layoutID.Validate(),
		origin.Validate(),
		extent.Validate(),
		reference.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameIsRequired
	}
	if sequence < 0 {
		return nil, errs.NewValueIsOutOfRangeError("sequence", sequence, 0, "unbounded")
	}

	footprint := kernel.NewBox(origin, extent)
	if !footprint.ContainsPlan(reference) {
		return nil, errs.NewValueIsInvalidErrorWithCause("reference",
			fmt.Errorf("%s is outside zone footprint %s", reference, footprint))
	}

	z.id = id
	z.layoutID = layoutID
	z.name = name
	z.sequence = sequence
	z.footprint = footprint
	z.reference = reference
	return z, nil
}

func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

func (z *Zone) ID() kernel.UUID { return z.id }

func (z *Zone) LayoutID() kernel.UUID { return z.layoutID }

func (z *Zone) Name() string { return z.name }

func (z *Zone) Sequence() int { return z.sequence }

func (z *Zone) Footprint() kernel.Box { return z.footprint }

func (z *Zone) Reference() kernel.Position { return z.reference }

// Covers reports whether a position falls inside the zone on the floor plan.
func (z *Zone) Covers(p kernel.Position) bool {
	return z.footprint.ContainsPlan(p)
}

// SortBySequence orders zones by sequence, then by id, without touching the input.
func SortBySequence(zones []*Zone) []*Zone {
	sorted := slices.Clone(zones)
	slices.SortStableFunc(sorted, func(a, b *Zone) int {
		if c := cmp.Compare(a.sequence, b.sequence); c != 0 {
			return c
		}
		switch {
		case a.id.Less(b.id):
			return -1
		case b.id.Less(a.id):
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// ZoneOf returns the first zone in visiting order that covers p, or nil.
func ZoneOf(sorted []*Zone, p kernel.Position) *Zone {
	for _, z := range sorted {
		if z.Covers(p) {
			return z
		}
	}
	return nil
}
