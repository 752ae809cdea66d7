package http

import (
	"errors"
	"net/http"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/movement"

	"github.com/labstack/echo/v4"
)

// RecordMovement handles POST /movements. A missing occurredAt means now.
func (s *Server) RecordMovement(c echo.Context) error {
	var req RecordMovementRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	productID, productErr := toKernelID(req.ProductID)
	destID, destErr := toKernelID(req.DestinationBinID)
	srcID, srcErr := toOptionalKernelID(req.SourceBinID)
	orderRef, orderErr := toOptionalKernelID(req.OrderRef)
	movementType, typeErr := movement.ParseType(req.Type)
	if err := errors.Join(productErr, destErr, srcErr, orderErr, typeErr); err != nil {
		return s.fail(c, err)
	}

	occurredAt := time.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	cmd, err := commands.NewRecordMovementCommand(
		productID, req.Quantity, srcID, destID, movementType, occurredAt, orderRef,
	)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.h.RecordMovement.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: idOf(cmd.MovementID())})
}
