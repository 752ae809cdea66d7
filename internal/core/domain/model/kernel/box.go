package kernel

import (
	"fmt"

	"github.com/golang/geo/r1"
)

// containmentTolerance absorbs float rounding from grid partitioning
// (e.g. 3 * 0.4 != 1.2 in binary floating point).
const containmentTolerance = 1e-9

// Box is an axis-aligned bounding box: one closed interval per axis.
type Box struct {
	x r1.Interval
	y r1.Interval
	z r1.Interval
}

// NewBox builds the box spanned by a minimum corner and its dimensions.
func NewBox(pos Position, dims Dimensions) Box {
	return Box{
		x: r1.Interval{Lo: pos.X(), Hi: pos.X() + dims.Width()},
		y: r1.Interval{Lo: pos.Y(), Hi: pos.Y() + dims.Depth()},
		z: r1.Interval{Lo: pos.Z(), Hi: pos.Z() + dims.Height()},
	}
}

// Contains reports whether inner lies entirely inside b.
func (b Box) Contains(inner Box) bool {
	return b.x.Expanded(containmentTolerance).ContainsInterval(inner.x) &&
		b.y.Expanded(containmentTolerance).ContainsInterval(inner.y) &&
		b.z.Expanded(containmentTolerance).ContainsInterval(inner.z)
}

// ContainsPlan reports whether the floor-plan projection (x, y) of p lies in b.
func (b Box) ContainsPlan(p Position) bool {
	return b.x.Expanded(containmentTolerance).Contains(p.X()) &&
		b.y.Expanded(containmentTolerance).Contains(p.Y())
}

func (b Box) Min() (x, y, z float64) {
	return b.x.Lo, b.y.Lo, b.z.Lo
}

func (b Box) Max() (x, y, z float64) {
	return b.x.Hi, b.y.Hi, b.z.Hi
}

func (b Box) String() string {
	return fmt.Sprintf("Box[%g..%g, %g..%g, %g..%g]", b.x.Lo, b.x.Hi, b.y.Lo, b.y.Hi, b.z.Lo, b.z.Hi)
}
