package kernel

import (
	"errors"
	"fmt"
	"math"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrDimensionsIsNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions is the extent of a location's bounding box in metres:
// width along X, depth along Y, height along Z.
type Dimensions struct { //nolint:recvcheck //using for validation
	width  float64
	depth  float64
	height float64
	guard  guard.ConstructorGuard
}

// NewDimensions validates that every extent is finite and strictly positive.
func NewDimensions(width, depth, height float64) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setExtent("width", width, &d.width),
		d.setExtent("depth", depth, &d.depth),
		d.setExtent("height", height, &d.height),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

func (d Dimensions) Width() float64 { return d.width }

func (d Dimensions) Depth() float64 { return d.depth }

func (d Dimensions) Height() float64 { return d.height }

// Volume in cubic metres.
func (d Dimensions) Volume() float64 {
	return d.width * d.depth * d.height
}

func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.width == other.width && d.depth == other.depth && d.height == other.height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("Dimensions(%gx%gx%g)", d.width, d.depth, d.height)
}

func (d *Dimensions) setExtent(name string, value float64, dst *float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, math.MaxFloat64)
	}

	*dst = value
	return nil
}
