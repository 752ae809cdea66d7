package location

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Kind is the variant of a Location node.
type Kind int

const (
	UnknownKind Kind = iota
	// Area is a top-level organisational region; it holds shelves, never inventory.
	Area
	// Shelf is a storage fixture partitioned into a grid of bins.
	Shelf
	// Bin is the only kind that can hold inventory.
	Bin
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "unknown",
		Area:        "area",
		Shelf:       "shelf",
		Bin:         "bin",
	}
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

func (k Kind) Validate() error {
	if k != Area && k != Shelf && k != Bin {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid location kind", k))
	}
	return nil
}

// ParentKind is the only kind allowed as the parent of k.
// Areas have no parent, reported as UnknownKind.
func (k Kind) ParentKind() Kind {
	switch k {
	case Shelf:
		return Area
	case Bin:
		return Shelf
	default:
		return UnknownKind
	}
}

func KindFromString(s string) (Kind, error) {
	for k, str := range getKindStrings() {
		if k != UnknownKind && str == s {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid location kind", s))
}
