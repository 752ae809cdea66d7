package route

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// Strategy selects how the bins of a pick list are ordered.
type Strategy string

const (
	// FIFO visits the least recently picked bins first.
	FIFO Strategy = "fifo"
	// LIFO visits the most recently picked bins first.
	LIFO Strategy = "lifo"
	// Zone walks zones in sequence order, nearest-neighbour inside each zone.
	Zone Strategy = "zone"
	// Optimal is nearest-neighbour over the whole pick list.
	Optimal Strategy = "optimal"
	// FEFO visits bins holding the earliest-expiring lots first.
	FEFO Strategy = "fefo"

	DefaultStrategy = Optimal
)

// AllStrategies lists every supported strategy.
func AllStrategies() []Strategy {
	return []Strategy{FIFO, LIFO, Zone, Optimal, FEFO}
}

// ParseStrategy accepts a strategy tag case-insensitively; an empty tag is the default.
func ParseStrategy(s string) (Strategy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultStrategy, nil
	}

	strategy := Strategy(s)
	if err := strategy.Validate(); err != nil {
		return "", err
	}
	return strategy, nil
}

func (s Strategy) Validate() error {
	for _, known := range AllStrategies() {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("strategy", fmt.Errorf("%q is not a known routing strategy", string(s)))
}

func (s Strategy) String() string {
	return string(s)
}
