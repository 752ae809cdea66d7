package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
)

// GetRoute handles GET /orders/:id/route. A route that was never computed is
// computed with the default strategy first.
func (s *Server) GetRoute(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewEnsureRouteCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	pr, err := s.h.EnsureRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, routeOf(pr))
}

// OptimizeRoute handles POST /orders/:id/route. An empty strategy means the default one.
func (s *Server) OptimizeRoute(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req OptimizeRouteRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	strategy, err := route.ParseStrategy(req.Strategy)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewOptimizeRouteCommand(orderID, strategy)
	if err != nil {
		return s.fail(c, err)
	}

	pr, err := s.h.OptimizeRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, routeOf(pr))
}
