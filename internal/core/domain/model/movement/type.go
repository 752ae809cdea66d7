package movement

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// Type classifies why inventory moved between bins.
type Type string

const (
	Putaway       Type = "putaway"
	Pick          Type = "pick"
	Transfer      Type = "transfer"
	Replenishment Type = "replenishment"
	Consolidation Type = "consolidation"
	Relocation    Type = "relocation"
)

// AllTypes lists the movement types in their canonical order.
func AllTypes() []Type {
	return []Type{Putaway, Pick, Transfer, Replenishment, Consolidation, Relocation}
}

// ParseType accepts a type tag case-insensitively and rejects unknown tags.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	for _, known := range AllTypes() {
		if t == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("movement type", fmt.Errorf("%q is not a known movement type", string(t)))
}

// AllowsMissingSource reports whether a movement of this type may have no source bin.
// Only an initial putaway brings inventory in from outside the hierarchy.
func (t Type) AllowsMissingSource() bool {
	return t == Putaway
}

func (t Type) String() string {
	return string(t)
}
