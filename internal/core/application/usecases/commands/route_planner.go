package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/route"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/metrics"
)

// DefaultRouteMaxBins caps the pick list size fed to the O(n²) nearest-neighbour search.
const DefaultRouteMaxBins = 500

// RoutePlanner computes and stores the route of one order inside a caller's unit of work.
type RoutePlanner struct {
	optimizer services.RouteOptimizer
	maxBins   int
	now       func() time.Time
}

// NewRoutePlanner creates a planner. A non-positive maxBins means DefaultRouteMaxBins.
func NewRoutePlanner(optimizer services.RouteOptimizer, maxBins int) RoutePlanner {
	if maxBins <= 0 {
		maxBins = DefaultRouteMaxBins
	}
	return RoutePlanner{optimizer: optimizer, maxBins: maxBins, now: time.Now}
}

// WithClock replaces the time source stamped on computed routes.
func (p RoutePlanner) WithClock(now func() time.Time) RoutePlanner {
	p.now = now
	return p
}

// Plan loads the order's pick list, checks it against the hierarchy, orders it
// under strategy and upserts the result.
func (p RoutePlanner) Plan(
	ctx context.Context,
	uow RouteUoW,
	orderID kernel.UUID,
	strategy route.Strategy,
) (*route.PickRoute, error) {
	started := time.Now()
	computed, err := p.plan(ctx, uow, orderID, strategy)
	metrics.ObserveRouteOptimization(strategy.String(), time.Since(started), err)
	return computed, err
}

func (p RoutePlanner) plan(
	ctx context.Context,
	uow RouteUoW,
	orderID kernel.UUID,
	strategy route.Strategy,
) (*route.PickRoute, error) {
	required, err := uow.PickListProvider().GetRequiredBins(ctx, orderID)
	if err != nil {
		return nil, err
	}

	binIDs := uniqueIDs(required)
	if len(binIDs) == 0 {
		return nil, fmt.Errorf("%w: order %s requires no bins", route.ErrRouteInputEmpty, orderID)
	}
	if len(binIDs) > p.maxBins {
		return nil, fmt.Errorf("%w: order %s requires %d bins, limit is %d",
			route.ErrRouteInputTooLarge, orderID, len(binIDs), p.maxBins)
	}

	bins, err := uow.LocationRepository().GetMany(ctx, binIDs)
	if err != nil {
		return nil, err
	}
	ordered, layoutID, err := matchBins(binIDs, bins)
	if err != nil {
		return nil, err
	}

	content, err := uow.StockLedger().GetStock(ctx, binIDs)
	if err != nil {
		return nil, err
	}
	lastPicks, err := uow.MovementRepository().LastPickTimes(ctx, binIDs)
	if err != nil {
		return nil, err
	}

	var zones []*layout.Zone
	if strategy == route.Zone {
		if zones, err = uow.LayoutRepository().GetZones(ctx, layoutID); err != nil {
			return nil, err
		}
	}

	stops := make([]services.RouteStop, 0, len(ordered))
	for _, b := range ordered {
		stops = append(stops, services.RouteStop{
			BinID:          b.ID(),
			Position:       b.Position(),
			LastPickedAt:   lastPicks[b.ID()],
			EarliestExpiry: content[b.ID()].EarliestExpiry(),
		})
	}

	plan, err := p.optimizer.Plan(strategy, stops, zones)
	if err != nil {
		return nil, err
	}

	computed, err := route.NewPickRoute(kernel.NewUUID(), orderID, layoutID, strategy,
		plan.Sequence(), plan.TotalDistance, plan.EstimatedTime, p.now())
	if err != nil {
		return nil, err
	}

	routes := uow.PickRouteRepository()
	stored, err := routes.GetByOrder(ctx, orderID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		stored = computed
	case err != nil:
		return nil, err
	default:
		if err = stored.Replace(computed); err != nil {
			return nil, err
		}
	}

	if err = routes.Save(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// matchBins returns the bins in pick-list order and their common layout.
func matchBins(binIDs []kernel.UUID, found []*location.Location) ([]*location.Location, kernel.UUID, error) {
	byID := make(map[kernel.UUID]*location.Location, len(found))
	for _, l := range found {
		byID[l.ID()] = l
	}

	ordered := make([]*location.Location, 0, len(binIDs))
	var layoutID kernel.UUID
	for i, id := range binIDs {
		l, ok := byID[id]
		switch {
		case !ok:
			return nil, kernel.UUID{}, fmt.Errorf("%w: bin %s does not exist", route.ErrRouteInputInconsistent, id)
		case !l.IsBin():
			return nil, kernel.UUID{}, fmt.Errorf("%w: %s is a %s, not a bin", route.ErrRouteInputInconsistent, l.Code(), l.Kind())
		case i == 0:
			layoutID = l.LayoutID()
		case !l.LayoutID().IsEqual(layoutID):
			return nil, kernel.UUID{}, fmt.Errorf("%w: bin %s belongs to another layout", route.ErrRouteInputInconsistent, l.Code())
		}
		ordered = append(ordered, l)
	}
	return ordered, layoutID, nil
}

func uniqueIDs(in []kernel.UUID) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(in))
	out := make([]kernel.UUID, 0, len(in))
	for _, id := range in {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
