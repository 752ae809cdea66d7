package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetLayoutQueryIsNotConstructed = errors.New(
	"GetLayoutQuery must be created via NewGetLayoutQuery constructor",
)

// GetLayoutQuery returns the full spatial tree of one layout.
type GetLayoutQuery struct {
	layoutID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLayoutQuery(layoutID kernel.UUID) (GetLayoutQuery, error) {
	if err := layoutID.Validate(); err != nil {
		return GetLayoutQuery{}, err
	}
	return GetLayoutQuery{layoutID: layoutID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLayoutQuery) Validate() error {
	return q.guard.Validate(ErrGetLayoutQueryIsNotConstructed)
}

func (q GetLayoutQuery) LayoutID() kernel.UUID { return q.layoutID }

type ZoneView struct {
	ID        kernel.UUID
	Name      string
	Sequence  int
	Origin    kernel.Position
	Width     float64
	Depth     float64
	Reference kernel.Position
}

// LocationView is one node of the tree. ParentID is nil for areas.
type LocationView struct {
	ID         kernel.UUID
	ParentID   *kernel.UUID
	Name       string
	Code       string
	Position   kernel.Position
	Dimensions kernel.Dimensions
	Blocked    bool
}

type GetLayoutQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Dimensions kernel.Dimensions
	Zones      []ZoneView
	Areas      []LocationView
	Shelves    []LocationView
	Bins       []LocationView
}
