package http

import (
	"errors"
	"log/slog"
	"net/http"

	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/route"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, location.ErrBinLocked),
		errors.Is(err, location.ErrNotEmpty):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, location.ErrInvalidHierarchy),
		errors.Is(err, location.ErrOutOfBounds),
		errors.Is(err, route.ErrRouteInputEmpty),
		errors.Is(err, route.ErrRouteInputInconsistent),
		errors.Is(err, route.ErrRouteInputTooLarge):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and reported
// without their detail.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("route", c.Path()),
			slog.Any("error", err),
		)
		message = http.StatusText(code)
	}
	return c.JSON(code, Error{Code: code, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
