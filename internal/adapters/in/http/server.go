// Package http exposes the warehouse use cases over a JSON HTTP API built on echo.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	_ "warehouse/docs"
	"warehouse/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With(slog.String("component", "http")),
	}
}

// EchoOptions toggles the operational endpoints next to the API.
type EchoOptions struct {
	Metrics bool // GET /metrics
	Docs    bool // GET /swagger/*
}

// NewEcho builds the echo instance with middleware and every route registered.
func NewEcho(s *Server, opts EchoOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			metrics.ObserveHTTPRequest(v.Method, v.RoutePath, strconv.Itoa(v.Status))
			s.logger.DebugContext(c.Request().Context(), "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if opts.Metrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
	if opts.Docs {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	s.Register(e)
	return e
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/layouts", s.CreateLayout)
	e.GET("/layouts/:id", s.GetLayout)
	e.POST("/layouts/:id/zones", s.CreateZone)
	e.POST("/layouts/:id/areas", s.CreateArea)
	e.GET("/layouts/:id/bins", s.GetBins)
	e.GET("/layouts/:id/heatmap", s.GetHeatmap)
	e.GET("/layouts/:id/heatmap.xlsx", s.ExportHeatmap)
	e.GET("/layouts/:id/metrics", s.GetMetrics)
	e.GET("/layouts/:id/movements/analytics", s.GetMovementAnalytics)

	e.POST("/areas/:id/shelves", s.CreateShelf)
	e.POST("/shelves/:id/bins", s.CreateBin)
	e.PUT("/shelves/:id/dimensions", s.ResizeShelf)
	e.PATCH("/bins/:id", s.RelocateBin)
	e.PUT("/bins/:id/block", s.SetBinBlocked)
	e.GET("/bins/:id/stock", s.GetBinStock)
	e.DELETE("/locations/:id", s.DeleteLocation)

	e.POST("/movements", s.RecordMovement)

	e.GET("/orders/:id/route", s.GetRoute)
	e.POST("/orders/:id/route", s.OptimizeRoute)
}
