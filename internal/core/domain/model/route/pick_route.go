package route

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	// ErrRouteInputEmpty is returned when an order requires no bins.
	ErrRouteInputEmpty = errors.New("route input is empty")
	// ErrRouteInputInconsistent is returned when the pick list references a bin
	// that does not exist, is not a bin, or lives on another layout.
	ErrRouteInputInconsistent = errors.New("route input is inconsistent")
	// ErrRouteInputTooLarge is returned when a pick list exceeds the configured bin limit.
	ErrRouteInputTooLarge = errors.New("route input is too large")

	ErrPickRouteIsNotConstructed = errors.New("PickRoute must be created via NewPickRoute constructor")
)

// PickRoute is the visiting order computed for one outbound order.
// There is at most one route per order; recomputing replaces it.
type PickRoute struct {
	id            kernel.UUID
	orderID       kernel.UUID
	layoutID      kernel.UUID
	strategy      Strategy
	sequence      []kernel.UUID
	totalDistance float64
	estimatedTime time.Duration
	computedAt    time.Time
	guard         guard.ConstructorGuard
}

// NewPickRoute validates that sequence is non-empty and free of duplicates.
func NewPickRoute(
	id, orderID, layoutID kernel.UUID,
	strategy Strategy,
	sequence []kernel.UUID,
	totalDistance float64,
	estimatedTime time.Duration,
	computedAt time.Time,
) (*PickRoute, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), layoutID.Validate(), strategy.Validate()); err != nil {
		return nil, err
	}
	if len(sequence) == 0 {
		return nil, ErrRouteInputEmpty
	}

	seen := make(map[kernel.UUID]struct{}, len(sequence))
	for _, binID := range sequence {
		if err := binID.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[binID]; dup {
			return nil, fmt.Errorf("%w: bin %s appears twice in the sequence", ErrRouteInputInconsistent, binID)
		}
		seen[binID] = struct{}{}
	}
	if totalDistance < 0 || estimatedTime < 0 {
		return nil, fmt.Errorf("%w: negative route metrics", ErrRouteInputInconsistent)
	}

	return &PickRoute{
		id:            id,
		orderID:       orderID,
		layoutID:      layoutID,
		strategy:      strategy,
		sequence:      append([]kernel.UUID(nil), sequence...),
		totalDistance: totalDistance,
		estimatedTime: estimatedTime,
		computedAt:    computedAt.UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (r *PickRoute) Validate() error {
	if r == nil {
		return ErrPickRouteIsNotConstructed
	}
	return r.guard.Validate(ErrPickRouteIsNotConstructed)
}

// ID stays the same when the route is replaced by a recomputation.
func (r *PickRoute) ID() kernel.UUID { return r.id }

// OrderID is the order the route serves; one route per order.
func (r *PickRoute) OrderID() kernel.UUID { return r.orderID }

func (r *PickRoute) LayoutID() kernel.UUID { return r.layoutID }

// Strategy is the ordering the route was last computed with.
func (r *PickRoute) Strategy() Strategy { return r.strategy }

// Sequence returns a copy of the bin ids in visiting order.
func (r *PickRoute) Sequence() []kernel.UUID {
	return append([]kernel.UUID(nil), r.sequence...)
}

// BinCount is the number of bins on the route.
func (r *PickRoute) BinCount() int { return len(r.sequence) }

// TotalDistance is the walking distance in metres between consecutive bins.
func (r *PickRoute) TotalDistance() float64 { return r.totalDistance }

// EstimatedTime is walking time at the optimizer's speed plus a fixed pick time per bin.
func (r *PickRoute) EstimatedTime() time.Duration { return r.estimatedTime }

func (r *PickRoute) ComputedAt() time.Time { return r.computedAt }

// Replace swaps in a recomputed ordering while keeping the route identity,
// which is what makes the order → route relation an upsert.
func (r *PickRoute) Replace(recomputed *PickRoute) error {
	if err := recomputed.Validate(); err != nil {
		return err
	}
	if !recomputed.orderID.IsEqual(r.orderID) {
		return fmt.Errorf("%w: route for order %s cannot replace route for order %s",
			ErrRouteInputInconsistent, recomputed.orderID, r.orderID)
	}

	r.layoutID = recomputed.layoutID
	r.strategy = recomputed.strategy
	r.sequence = recomputed.Sequence()
	r.totalDistance = recomputed.totalDistance
	r.estimatedTime = recomputed.estimatedTime
	r.computedAt = recomputed.computedAt
	return nil
}
