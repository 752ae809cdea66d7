package kernel

import (
	"errors"
	"fmt"
	"math"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/golang/geo/r3"
)

// ErrPositionIsNotConstructed is returned when a zero-value Position is used.
var ErrPositionIsNotConstructed = errs.NewValueIsRequiredError(
	"position must be created via NewPosition or NewPlanPosition constructors")

// Position is a point in the warehouse coordinate system, in metres.
// X runs along shelf width, Y along depth and Z is height above the floor.
// A location's Position is the minimum corner of its bounding box.
type Position struct { //nolint:recvcheck //using for validation
	v     r3.Vector
	guard guard.ConstructorGuard
}

// NewPosition creates a 3D position. All coordinates must be finite and non-negative.
func NewPosition(x, y, z float64) (Position, error) {
	p := Position{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setAxis("x", x, &p.v.X),
		p.setAxis("y", y, &p.v.Y),
		p.setAxis("z", z, &p.v.Z),
	); err != nil {
		return Position{}, err
	}

	return p, nil
}

// NewPlanPosition creates a position on the floor plan (z = 0).
func NewPlanPosition(x, y float64) (Position, error) {
	return NewPosition(x, y, 0)
}

// Origin is the (0,0,0) corner of a layout.
func Origin() Position {
	return Position{guard: guard.NewConstructorGuard()}
}

func (p Position) Validate() error {
	return p.guard.Validate(ErrPositionIsNotConstructed)
}

func (p Position) X() float64 { return p.v.X }

func (p Position) Y() float64 { return p.v.Y }

func (p Position) Z() float64 { return p.v.Z }

// Vector exposes the position as an r3 vector.
func (p Position) Vector() r3.Vector {
	return p.v
}

// Distance returns the Euclidean distance between two positions.
func (p Position) Distance(other Position) float64 {
	return p.v.Distance(other.v)
}

// Offset returns p translated by (dx, dy, dz).
func (p Position) Offset(dx, dy, dz float64) (Position, error) {
	return NewPosition(p.v.X+dx, p.v.Y+dy, p.v.Z+dz)
}

func (p Position) IsEqual(other Position) bool {
	return p.v == other.v
}

func (p Position) String() string {
	return fmt.Sprintf("Position(%g,%g,%g)", p.v.X, p.v.Y, p.v.Z)
}

func (p *Position) setAxis(name string, value float64, dst *float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, math.MaxFloat64)
	}

	*dst = value
	return nil
}
