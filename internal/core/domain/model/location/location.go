package location

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// Location is a node of the Area → Shelf → Bin containment tree.
//
// Invariants held by every constructor and mutator:
//   - an Area has no parent; a Shelf's parent is an Area; a Bin's parent is a Shelf
//   - a child's bounding box lies inside its parent's bounding box
//   - a Bin holding inventory (locked) only accepts SetBlocked
//
// Whether a bin is locked is derived from stock facts, so mutators receive it
// as an argument rather than reading it from the aggregate.
type Location struct {
	id          kernel.UUID
	layoutID    kernel.UUID
	kind        Kind
	name        string
	code        string
	position    kernel.Position
	dimensions  kernel.Dimensions
	parentID    *kernel.UUID
	capacity    Capacity
	blocked     bool
	blockReason string
	guard       guard.ConstructorGuard
}

// NewArea creates a top-level area on a layout.
func NewArea(
	id kernel.UUID,
	layoutID kernel.UUID,
	name, code string,
	position kernel.Position,
	dimensions kernel.Dimensions,
) (*Location, error) {
	area := &Location{kind: Area, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		area.setID(id),
		area.setLayoutID(layoutID),
		area.setName(name),
		area.setCode(code),
		area.setGeometry(position, dimensions),
	); err != nil {
		return nil, err
	}

	return area, nil
}

// NewShelf creates a shelf inside an area. The shelf box must fit in the area box.
func NewShelf(
	id kernel.UUID,
	area *Location,
	name, code string,
	position kernel.Position,
	dimensions kernel.Dimensions,
) (*Location, error) {
	return newChild(Shelf, id, area, name, code, position, dimensions, Capacity{})
}

// NewBin creates a bin inside a shelf. Fails with ErrInvalidHierarchy when the
// parent is missing or not a shelf, and with ErrOutOfBounds when the bin box
// does not fit in the shelf box.
func NewBin(
	id kernel.UUID,
	shelf *Location,
	name, code string,
	position kernel.Position,
	dimensions kernel.Dimensions,
	capacity Capacity,
) (*Location, error) {
	return newChild(Bin, id, shelf, name, code, position, dimensions, capacity)
}

// RestoreLocation rebuilds a persisted node. Parent rules were checked when the
// node was created, so only field-level validation runs here.
func RestoreLocation(
	id kernel.UUID,
	layoutID kernel.UUID,
	kind Kind,
	name, code string,
	position kernel.Position,
	dimensions kernel.Dimensions,
	parentID *kernel.UUID,
	capacity Capacity,
	blocked bool,
	blockReason string,
) (*Location, error) {
	l := &Location{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		kind.Validate(),
		l.setID(id),
		l.setLayoutID(layoutID),
		l.setName(name),
		l.setCode(code),
		l.setGeometry(position, dimensions),
	); err != nil {
		return nil, err
	}

	if kind == Area && parentID != nil {
		return nil, fmt.Errorf("%w: area %s cannot have a parent", ErrInvalidHierarchy, id)
	}
	if kind != Area && parentID == nil {
		return nil, fmt.Errorf("%w: %s %s has no parent", ErrInvalidHierarchy, kind, id)
	}

	l.kind = kind
	l.parentID = parentID
	if kind == Bin {
		l.capacity = capacity
		l.blocked = blocked
		l.blockReason = blockReason
	}

	return l, nil
}

func newChild(
	kind Kind,
	id kernel.UUID,
	parent *Location,
	name, code string,
	position kernel.Position,
	dimensions kernel.Dimensions,
	capacity Capacity,
) (*Location, error) {
	if err := checkParent(kind, parent); err != nil {
		return nil, err
	}

	child := &Location{kind: kind, capacity: capacity, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		child.setID(id),
		child.setLayoutID(parent.layoutID),
		child.setName(name),
		child.setCode(code),
		child.setGeometry(position, dimensions),
	); err != nil {
		return nil, err
	}

	if err := checkFits(parent, child.Box()); err != nil {
		return nil, err
	}

	parentID := parent.id
	child.parentID = &parentID
	return child, nil
}

// Validate fails for a nil or zero-value Location.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// IsEqual compares identity only.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the location identifier.
func (l *Location) ID() kernel.UUID { return l.id }

// LayoutID returns the layout the node belongs to. It never changes, even when a bin is re-parented.
func (l *Location) LayoutID() kernel.UUID { return l.layoutID }

// Kind tells whether the node is an area, shelf or bin.
func (l *Location) Kind() Kind { return l.kind }

func (l *Location) IsBin() bool { return l.kind == Bin }

// Name returns the display name.
func (l *Location) Name() string { return l.name }

// Code is the human label printed on the rack, e.g. A-S1-L01-R01-C01.
func (l *Location) Code() string { return l.code }

// Position is the corner of the node with the smallest coordinates, in layout metres.
func (l *Location) Position() kernel.Position { return l.position }

func (l *Location) Dimensions() kernel.Dimensions { return l.dimensions }

// Box is the space the node occupies, used for every containment check.
func (l *Location) Box() kernel.Box { return kernel.NewBox(l.position, l.dimensions) }

// ParentID is nil only for areas.
func (l *Location) ParentID() *kernel.UUID {
	if l.parentID == nil {
		return nil
	}
	id := *l.parentID
	return &id
}

// Capacity is the zero value for areas and shelves.
func (l *Location) Capacity() Capacity { return l.capacity }

// IsBlocked reports a manual block set through SetBlocked.
func (l *Location) IsBlocked() bool { return l.blocked }

// BlockReason is empty while the bin is not blocked.
func (l *Location) BlockReason() string { return l.blockReason }

// Relocate moves, resizes and/or re-parents a bin in one step. A nil newShelf
// keeps the current parent, in which case currentShelf must be supplied for the
// containment check. Locked bins reject any actual change with ErrBinLocked.
func (l *Location) Relocate(
	currentShelf *Location,
	newShelf *Location,
	position kernel.Position,
	dimensions kernel.Dimensions,
	locked bool,
) error {
	if l.kind != Bin {
		return fmt.Errorf("%w: only bins can be relocated, %s is a %s", ErrInvalidHierarchy, l.id, l.kind)
	}
	if err := errors.Join(position.Validate(), dimensions.Validate()); err != nil {
		return err
	}

	target := currentShelf
	if newShelf != nil {
		target = newShelf
	}
	if err := checkParent(Bin, target); err != nil {
		return err
	}
	if newShelf == nil && (l.parentID == nil || !l.parentID.IsEqual(currentShelf.id)) {
		return fmt.Errorf("%w: %s is not the parent of bin %s", ErrInvalidHierarchy, currentShelf.id, l.id)
	}

	changed := !l.position.IsEqual(position) ||
		!l.dimensions.IsEqual(dimensions) ||
		!l.parentID.IsEqual(target.id)
	if !changed {
		return nil
	}
	if locked {
		return fmt.Errorf("%w: bin %s holds inventory, only blocking is allowed", ErrBinLocked, l.code)
	}
	if !target.layoutID.IsEqual(l.layoutID) {
		return fmt.Errorf("%w: shelf %s belongs to another layout", ErrInvalidHierarchy, target.id)
	}
	if err := checkFits(target, kernel.NewBox(position, dimensions)); err != nil {
		return err
	}

	parentID := target.id
	l.parentID = &parentID
	l.position = position
	l.dimensions = dimensions
	return nil
}

// SetBlocked toggles the blocked flag. It is the one mutation a locked bin accepts.
// Blocking requires a reason; unblocking clears it.
func (l *Location) SetBlocked(blocked bool, reason string) error {
	if l.kind != Bin {
		return fmt.Errorf("%w: only bins can be blocked, %s is a %s", ErrInvalidHierarchy, l.id, l.kind)
	}

	reason = strings.TrimSpace(reason)
	if blocked && reason == "" {
		return errs.NewValueIsRequiredError("block reason")
	}
	if !blocked {
		reason = ""
	}

	l.blocked = blocked
	l.blockReason = reason
	return nil
}

// ResizeShelf changes a shelf's footprint. Its bins are regenerated afterwards,
// so the resize is refused while any of them holds inventory.
func (l *Location) ResizeShelf(area *Location, dimensions kernel.Dimensions, anyBinLocked bool) error {
	if l.kind != Shelf {
		return fmt.Errorf("%w: %s is a %s, not a shelf", ErrInvalidHierarchy, l.id, l.kind)
	}
	if err := dimensions.Validate(); err != nil {
		return err
	}
	if anyBinLocked {
		return fmt.Errorf("%w: shelf %s has bins holding inventory", ErrBinLocked, l.code)
	}
	if err := checkParent(Shelf, area); err != nil {
		return err
	}
	if err := checkFits(area, kernel.NewBox(l.position, dimensions)); err != nil {
		return err
	}

	l.dimensions = dimensions
	return nil
}

// EnsureDeletable refuses deletion while the node or any descendant bin is locked.
func (l *Location) EnsureDeletable(lockedBins []kernel.UUID) error {
	if len(lockedBins) == 0 {
		return nil
	}

	codes := make([]string, 0, len(lockedBins))
	for _, id := range lockedBins {
		codes = append(codes, id.String())
	}
	return fmt.Errorf("%w: %s %s has %d locked bin(s): %s",
		ErrNotEmpty, l.kind, l.code, len(lockedBins), strings.Join(codes, ", "))
}

func checkParent(kind Kind, parent *Location) error {
	if parent == nil || parent.Validate() != nil {
		return fmt.Errorf("%w: %s requires a %s parent", ErrInvalidHierarchy, kind, kind.ParentKind())
	}
	if parent.kind != kind.ParentKind() {
		return fmt.Errorf("%w: %s parent must be a %s, got %s",
			ErrInvalidHierarchy, kind, kind.ParentKind(), parent.kind)
	}
	return nil
}

func checkFits(parent *Location, box kernel.Box) error {
	if !parent.Box().Contains(box) {
		return fmt.Errorf("%w: %s does not fit in %s %s %s",
			ErrOutOfBounds, box, parent.kind, parent.code, parent.Box())
	}
	return nil
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setLayoutID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("layoutID", err)
	}
	l.layoutID = id
	return nil
}

func (l *Location) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Location) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("code")
	}
	l.code = code
	return nil
}

func (l *Location) setGeometry(position kernel.Position, dimensions kernel.Dimensions) error {
	if err := errors.Join(position.Validate(), dimensions.Validate()); err != nil {
		return err
	}
	l.position = position
	l.dimensions = dimensions
	return nil
}
