package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateLayout handles POST /layouts.
func (s *Server) CreateLayout(c echo.Context) error {
	var req CreateLayoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	dims, err := req.Dimensions.toDomain()
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreateLayoutCommand(req.Name, dims)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.h.CreateLayout.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: idOf(cmd.LayoutID())})
}

// GetLayout handles GET /layouts/:id.
func (s *Server) GetLayout(c echo.Context) error {
	layoutID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetLayoutQuery(layoutID)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.GetLayout.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, layoutOf(resp))
}

// CreateZone handles POST /layouts/:id/zones.
func (s *Server) CreateZone(c echo.Context) error {
	layoutID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req CreateZoneRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	origin, originErr := req.Origin.toDomain()
	ref, refErr := req.Reference.toDomain()
	if err := errors.Join(originErr, refErr); err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreateZoneCommand(layoutID, req.Name, req.Sequence, origin, req.Width, req.Depth, ref)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.h.CreateZone.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: idOf(cmd.ZoneID())})
}

// CreateArea handles POST /layouts/:id/areas.
func (s *Server) CreateArea(c echo.Context) error {
	layoutID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req CreateAreaRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	pos, dims, err := req.geometry()
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreateAreaCommand(layoutID, req.Name, req.Code, pos, dims)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.h.CreateArea.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: idOf(cmd.AreaID())})
}
