package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
)

// CreateBinCommandHandler adds a bin after checking its parent is a shelf
// whose box contains the new bin.
type CreateBinCommandHandler struct {
	uowFactory HierarchyUoWFactory
}

// NewCreateBinCommandHandler creates the handler over a hierarchy unit of work factory.
func NewCreateBinCommandHandler(uowFactory HierarchyUoWFactory) CreateBinCommandHandler {
	return CreateBinCommandHandler{uowFactory: uowFactory}
}

// Handle stores the new bin. A missing parent surfaces as location.ErrInvalidHierarchy,
// a bin outside its shelf as location.ErrOutOfBounds.
func (h CreateBinCommandHandler) Handle(ctx context.Context, command CreateBinCommand) error {
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
	shelf, err := repo.Get(ctx, command.ShelfID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: parent shelf %s does not exist", location.ErrInvalidHierarchy, command.ShelfID())
	}
	if err != nil {
		return err
	}

	bin, err := location.NewBin(command.BinID(), shelf, command.Name(), command.Code(),
		command.Position(), command.Dimensions(), command.Capacity())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, bin); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
