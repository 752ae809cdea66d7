package commands

import (
	"context"
)

// SetBinBlockedCommandHandler blocks or unblocks a bin under its row lock.
// Blocking does not depend on stock: a full bin can be blocked for inspection.
//
// Example:
//
//	handler := NewSetBinBlockedCommandHandler(uowFactory)
//	cmd, _ := NewSetBinBlockedCommand(binID, true, "damaged beam")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Block failed: %v", err)
//	}
type SetBinBlockedCommandHandler struct {
	uowFactory HierarchyUoWFactory
}

// NewSetBinBlockedCommandHandler creates the handler over a hierarchy unit of work factory.
func NewSetBinBlockedCommandHandler(uowFactory HierarchyUoWFactory) SetBinBlockedCommandHandler {
	return SetBinBlockedCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound for an unknown id and with
// location.ErrInvalidHierarchy when the id is not a bin.
func (h SetBinBlockedCommandHandler) Handle(ctx context.Context, command SetBinBlockedCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LocationRepository()
	bin, err := repo.GetForUpdate(ctx, command.BinID())
	if err != nil {
		return err
	}

	if err = bin.SetBlocked(command.Blocked(), command.Reason()); err != nil {
		return err
	}

	if err = repo.Update(ctx, bin); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
