package services

import (
	"cmp"
	"slices"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/route"
	"warehouse/internal/pkg/errs"
)

const (
	DefaultWalkingSpeed = 1.2 // m/s
	DefaultPickTime     = 30 * time.Second
)

// RouteStop is one bin of a pick list together with the facts the strategies sort by.
// A zero LastPickedAt means the bin was never picked and sorts before every real time.
type RouteStop struct {
	BinID          kernel.UUID
	Position       kernel.Position
	LastPickedAt   time.Time
	EarliestExpiry *time.Time
}

// RoutePlan is an ordered pick list and its walking metrics.
type RoutePlan struct {
	Strategy      route.Strategy
	Stops         []RouteStop
	TotalDistance float64
	EstimatedTime time.Duration
}

// Sequence returns the bin ids in visiting order.
func (p RoutePlan) Sequence() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(p.Stops))
	for _, s := range p.Stops {
		ids = append(ids, s.BinID)
	}
	return ids
}

// RouteOptimizer orders the bins of one order. Every strategy returns a
// permutation of its (de-duplicated) input.
type RouteOptimizer struct {
	walkingSpeed float64
	pickTime     time.Duration
}

// NewRouteOptimizer creates an optimizer that estimates walking time at
// walkingSpeed metres per second plus pickTime at every bin.
//
// Example:
//
//	optimizer, err := services.NewRouteOptimizer(1.2, 30*time.Second)
//	if err != nil {
//	    return err
//	}
//	plan, err := optimizer.Plan(route.Optimal, stops, zones)
func NewRouteOptimizer(walkingSpeed float64, pickTime time.Duration) (RouteOptimizer, error) {
	if walkingSpeed <= 0 {
		return RouteOptimizer{}, errs.NewValueIsOutOfRangeError("walkingSpeed", walkingSpeed, "> 0", "unbounded")
	}
	if pickTime < 0 {
		return RouteOptimizer{}, errs.NewValueIsOutOfRangeError("pickTime", pickTime, 0, "unbounded")
	}
	return RouteOptimizer{walkingSpeed: walkingSpeed, pickTime: pickTime}, nil
}

// NewDefaultRouteOptimizer uses DefaultWalkingSpeed and DefaultPickTime.
func NewDefaultRouteOptimizer() RouteOptimizer {
	return RouteOptimizer{walkingSpeed: DefaultWalkingSpeed, pickTime: DefaultPickTime}
}

// Plan orders stops under strategy and measures the resulting walk.
// zones is only consulted by the zone strategy.
func (o RouteOptimizer) Plan(strategy route.Strategy, stops []RouteStop, zones []*layout.Zone) (RoutePlan, error) {
	ordered, err := o.Order(strategy, stops, zones)
	if err != nil {
		return RoutePlan{}, err
	}

	distance, estimate := o.Measure(ordered)
	return RoutePlan{
		Strategy:      strategy,
		Stops:         ordered,
		TotalDistance: distance,
		EstimatedTime: estimate,
	}, nil
}

// Order returns stops in visiting order. Duplicate bin ids are collapsed to
// their first occurrence.
func (o RouteOptimizer) Order(strategy route.Strategy, stops []RouteStop, zones []*layout.Zone) ([]RouteStop, error) {
	if err := strategy.Validate(); err != nil {
		return nil, err
	}

	unique := dedupe(stops)
	if len(unique) == 0 {
		return nil, route.ErrRouteInputEmpty
	}

	switch strategy {
	case route.FIFO:
		slices.SortStableFunc(unique, func(a, b RouteStop) int {
			return a.LastPickedAt.Compare(b.LastPickedAt)
		})
		return unique, nil
	case route.LIFO:
		slices.SortStableFunc(unique, func(a, b RouteStop) int {
			return b.LastPickedAt.Compare(a.LastPickedAt)
		})
		return unique, nil
	case route.Zone:
		return byZone(unique, zones), nil
	case route.FEFO:
		return byExpiry(unique), nil
	default:
		return NearestNeighbour(unique[0].Position, unique), nil
	}
}

// Measure sums the legs between consecutive stops and estimates the time to
// walk them and pick every bin.
func (o RouteOptimizer) Measure(ordered []RouteStop) (float64, time.Duration) {
	var distance float64
	for i := 1; i < len(ordered); i++ {
		distance += ordered[i-1].Position.Distance(ordered[i].Position)
	}

	walk := time.Duration(distance / o.walkingSpeed * float64(time.Second))
	return distance, walk + time.Duration(len(ordered))*o.pickTime
}

// NearestNeighbour greedily visits the closest remaining stop, starting from
// start. Equidistant stops are taken lowest bin id first. O(n²).
func NearestNeighbour(start kernel.Position, stops []RouteStop) []RouteStop {
	remaining := slices.Clone(stops)
	ordered := make([]RouteStop, 0, len(stops))
	current := start

	for len(remaining) > 0 {
		best := 0
		bestDistance := current.Distance(remaining[0].Position)
		for i := 1; i < len(remaining); i++ {
			d := current.Distance(remaining[i].Position)
			if d < bestDistance || (d == bestDistance && remaining[i].BinID.Less(remaining[best].BinID)) {
				best, bestDistance = i, d
			}
		}

		next := remaining[best]
		ordered = append(ordered, next)
		current = next.Position
		remaining = slices.Delete(remaining, best, best+1)
	}

	return ordered
}

func byZone(stops []RouteStop, zones []*layout.Zone) []RouteStop {
	sorted := layout.SortBySequence(zones)
	groups := make(map[kernel.UUID][]RouteStop, len(sorted))
	var unzoned []RouteStop

	for _, s := range stops {
		z := layout.ZoneOf(sorted, s.Position)
		if z == nil {
			unzoned = append(unzoned, s)
			continue
		}
		groups[z.ID()] = append(groups[z.ID()], s)
	}

	ordered := make([]RouteStop, 0, len(stops))
	for _, z := range sorted {
		if group, ok := groups[z.ID()]; ok {
			ordered = append(ordered, NearestNeighbour(z.Reference(), group)...)
		}
	}
	return append(ordered, unzoned...)
}

func byExpiry(stops []RouteStop) []RouteStop {
	origin := kernel.Origin()
	slices.SortStableFunc(stops, func(a, b RouteStop) int {
		switch {
		case a.EarliestExpiry != nil && b.EarliestExpiry == nil:
			return -1
		case a.EarliestExpiry == nil && b.EarliestExpiry != nil:
			return 1
		case a.EarliestExpiry != nil:
			if c := a.EarliestExpiry.Compare(*b.EarliestExpiry); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Position.Distance(origin), b.Position.Distance(origin))
	})
	return stops
}

func dedupe(stops []RouteStop) []RouteStop {
	seen := make(map[kernel.UUID]struct{}, len(stops))
	unique := make([]RouteStop, 0, len(stops))
	for _, s := range stops {
		if _, ok := seen[s.BinID]; ok {
			continue
		}
		seen[s.BinID] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}
