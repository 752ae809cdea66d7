package commands

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/route"
	"warehouse/internal/pkg/errs"
)

// EnsureRouteCommandHandler returns the stored route of an order, computing and
// storing one with route.DefaultStrategy the first time the order is asked for.
//
// Example:
//
//	handler := NewEnsureRouteCommandHandler(uowFactory, planner)
//	cmd, _ := NewEnsureRouteCommand(orderID)
//	r, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, route.ErrRouteInputEmpty):
//	    log.Println("Order has nothing to pick")
//	case err != nil:
//	    log.Printf("Route failed: %v", err)
//	default:
//	    log.Printf("Walk %.1f m over %d bins", r.TotalDistance(), r.BinCount())
//	}
type EnsureRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	planner    RoutePlanner
}

// NewEnsureRouteCommandHandler creates the handler. The planner is shared with
// OptimizeRouteCommandHandler so both compute routes the same way.
func NewEnsureRouteCommandHandler(uowFactory RouteUoWFactory, planner RoutePlanner) EnsureRouteCommandHandler {
	return EnsureRouteCommandHandler{uowFactory: uowFactory, planner: planner}
}

// Handle never recomputes a stored route; use OptimizeRouteCommandHandler for that.
func (h EnsureRouteCommandHandler) Handle(ctx context.Context, command EnsureRouteCommand) (*route.PickRoute, error) {
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

	stored, err := uow.PickRouteRepository().GetByOrder(ctx, command.OrderID())
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	computed, err := h.planner.Plan(ctx, uow, command.OrderID(), route.DefaultStrategy)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return computed, nil
}
