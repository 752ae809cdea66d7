package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrEnsureRouteCommandIsNotConstructed = errors.New(
	"EnsureRouteCommand must be created via NewEnsureRouteCommand constructor",
)

// EnsureRouteCommand returns an order's stored route, computing and storing it
// with the default strategy on first access.
type EnsureRouteCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewEnsureRouteCommand(orderID kernel.UUID) (EnsureRouteCommand, error) {
	if err := orderID.Validate(); err != nil {
		return EnsureRouteCommand{}, err
	}
	return EnsureRouteCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c EnsureRouteCommand) Validate() error {
	return c.guard.Validate(ErrEnsureRouteCommandIsNotConstructed)
}

func (c EnsureRouteCommand) OrderID() kernel.UUID { return c.orderID }
