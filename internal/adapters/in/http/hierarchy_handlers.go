package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/location"

	"github.com/labstack/echo/v4"
)

// CreateShelf handles POST /areas/:id/shelves. With a grid the shelf is
// partitioned into bins right away and their ids are returned.
func (s *Server) CreateShelf(c echo.Context) error {
	areaID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req CreateShelfRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	pos, dims, geomErr := req.geometry()
	capacity, capErr := req.BinCapacity.toDomain()
	var grid *location.Grid
	var gridErr error
	if req.Grid != nil {
		var g location.Grid
		g, gridErr = req.Grid.toDomain()
		grid = &g
	}
	if err := errors.Join(geomErr, capErr, gridErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateShelfCommand(areaID, req.Name, req.Code, pos, dims, grid, capacity)
	if err != nil {
		return s.fail(c, err)
	}
	binIDs, err := s.h.CreateShelf.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedShelf{ID: idOf(cmd.ShelfID()), BinIDs: idsOf(binIDs)})
}

// CreateBin handles POST /shelves/:id/bins.
func (s *Server) CreateBin(c echo.Context) error {
	shelfID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req CreateBinRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	pos, dims, geomErr := req.geometry()
	capacity, capErr := req.Capacity.toDomain()
	if err := errors.Join(geomErr, capErr); err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreateBinCommand(shelfID, req.Name, req.Code, pos, dims, capacity)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.h.CreateBin.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: idOf(cmd.BinID())})
}

// ResizeShelf handles PUT /shelves/:id/dimensions and returns the regenerated bin ids.
func (s *Server) ResizeShelf(c echo.Context) error {
	shelfID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req ResizeShelfRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	dims, dimsErr := req.Dimensions.toDomain()
	grid, gridErr := req.Grid.toDomain()
	capacity, capErr := req.BinCapacity.toDomain()
	if err := errors.Join(dimsErr, gridErr, capErr); err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewResizeShelfCommand(shelfID, dims, grid, capacity)
	if err != nil {
		return s.fail(c, err)
	}
	binIDs, err := s.h.ResizeShelf.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, BinIDs{BinIDs: idsOf(binIDs)})
}

// RelocateBin handles PATCH /bins/:id: move, resize or re-parent a bin.
func (s *Server) RelocateBin(c echo.Context) error {
	binID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req RelocateBinRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	pos, posErr := req.Position.toDomain()
	dims, dimsErr := req.Dimensions.toDomain()
	shelfID, shelfErr := toOptionalKernelID(req.ShelfID)
	if err := errors.Join(posErr, dimsErr, shelfErr); err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewRelocateBinCommand(binID, shelfID, pos, dims)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.h.RelocateBin.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetBinBlocked handles PUT /bins/:id/block.
func (s *Server) SetBinBlocked(c echo.Context) error {
	binID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req SetBinBlockedRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSetBinBlockedCommand(binID, req.Blocked, req.Reason)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.h.SetBinBlocked.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteLocation handles DELETE /locations/:id. The whole subtree goes with it.
func (s *Server) DeleteLocation(c echo.Context) error {
	locationID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewDeleteLocationCommand(locationID)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.h.DeleteLocation.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetBinStock handles GET /bins/:id/stock.
func (s *Server) GetBinStock(c echo.Context) error {
	binID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	asOf, err := timeQuery(c, "asOf")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetBinStockQuery(binID, asOf)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.GetBinStock.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, binStockOf(resp))
}
