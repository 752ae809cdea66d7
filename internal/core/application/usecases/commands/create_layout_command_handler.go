package commands

import (
	"context"

	"warehouse/internal/core/domain/model/layout"
)

// CreateLayoutCommandHandler persists a new, empty layout.
type CreateLayoutCommandHandler struct {
	uowFactory LayoutUoWFactory
}

// NewCreateLayoutCommandHandler creates the handler over a layout unit of work factory.
func NewCreateLayoutCommandHandler(uowFactory LayoutUoWFactory) CreateLayoutCommandHandler {
	return CreateLayoutCommandHandler{uowFactory: uowFactory}
}

// Handle stores an empty layout with the command's id, name and floor dimensions.
func (h CreateLayoutCommandHandler) Handle(ctx context.Context, command CreateLayoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	l, err := layout.NewLayout(command.LayoutID(), command.Name(), command.Dimensions())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LayoutRepository().Add(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
