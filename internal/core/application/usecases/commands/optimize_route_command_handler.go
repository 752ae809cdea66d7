package commands

import (
	"context"

	"warehouse/internal/core/domain/model/route"
)

// OptimizeRouteCommandHandler forces recomputation of an order's route.
type OptimizeRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	planner    RoutePlanner
}

// NewOptimizeRouteCommandHandler creates the handler over a route unit of work factory.
func NewOptimizeRouteCommandHandler(uowFactory RouteUoWFactory, planner RoutePlanner) OptimizeRouteCommandHandler {
	return OptimizeRouteCommandHandler{uowFactory: uowFactory, planner: planner}
}

// Handle computes the route with the command's strategy and replaces any stored
// route of the order, keeping its id.
func (h OptimizeRouteCommandHandler) Handle(ctx context.Context, command OptimizeRouteCommand) (*route.PickRoute, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	computed, err := h.planner.Plan(ctx, uow, command.OrderID(), command.Strategy())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return computed, nil
}
