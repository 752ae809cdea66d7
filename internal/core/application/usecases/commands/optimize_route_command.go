package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/route"
	"warehouse/internal/pkg/guard"
)

var ErrOptimizeRouteCommandIsNotConstructed = errors.New(
	"OptimizeRouteCommand must be created via NewOptimizeRouteCommand constructor",
)

// OptimizeRouteCommand recomputes an order's route under a strategy, replacing
// any stored route.
type OptimizeRouteCommand struct {
	orderID  kernel.UUID
	strategy route.Strategy

	guard guard.ConstructorGuard
}

func NewOptimizeRouteCommand(orderID kernel.UUID, strategy route.Strategy) (OptimizeRouteCommand, error) {
	if err := errors.Join(orderID.Validate(), strategy.Validate()); err != nil {
		return OptimizeRouteCommand{}, err
	}
	return OptimizeRouteCommand{orderID: orderID, strategy: strategy, guard: guard.NewConstructorGuard()}, nil
}

func (c OptimizeRouteCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeRouteCommandIsNotConstructed)
}

func (c OptimizeRouteCommand) OrderID() kernel.UUID { return c.orderID }

func (c OptimizeRouteCommand) Strategy() route.Strategy { return c.strategy }
