package layout

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrLayoutIsNotConstructed = errors.New("Layout must be created via NewLayout constructor")
)

// Layout is a warehouse floor: the root every Area, Zone and snapshot refers to.
type Layout struct {
	id         kernel.UUID
	name       string
	dimensions kernel.Dimensions
	guard      guard.ConstructorGuard
}

// NewLayout rejects a blank name and invalid floor dimensions.
//
// Example:
//
//	floor, err := kernel.NewDimensions(60, 40, 10)
//	if err != nil {
//	    return err
//	}
//	l, err := layout.NewLayout(kernel.NewUUID(), "Main DC", floor)
func NewLayout(id kernel.UUID, name string, dimensions kernel.Dimensions) (*Layout, error) {
	l := &Layout{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
		l.setDimensions(dimensions),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Layout) Validate() error {
	if l == nil {
		return ErrLayoutIsNotConstructed
	}
	return l.guard.Validate(ErrLayoutIsNotConstructed)
}

func (l *Layout) ID() kernel.UUID { return l.id }

func (l *Layout) Name() string { return l.name }

func (l *Layout) Dimensions() kernel.Dimensions { return l.dimensions }

// Box is the whole floor volume, anchored at the origin.
func (l *Layout) Box() kernel.Box {
	return kernel.NewBox(kernel.Origin(), l.dimensions)
}

func (l *Layout) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Layout) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	l.name = name
	return nil
}

func (l *Layout) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	l.dimensions = dimensions
	return nil
}
