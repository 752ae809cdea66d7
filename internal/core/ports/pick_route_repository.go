package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/route"
)

// PickRouteRepository stores at most one route per order.
type PickRouteRepository interface {
	// Save inserts the route or replaces the stored route of the same order.
	Save(ctx context.Context, r *route.PickRoute) error

	// GetByOrder returns errs.ErrObjectNotFound when no route was computed yet.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*route.PickRoute, error)

	// GetComputedBetween returns routes of a layout computed in [from, to).
	GetComputedBetween(ctx context.Context, layoutID kernel.UUID, from, to time.Time) ([]*route.PickRoute, error)
}
