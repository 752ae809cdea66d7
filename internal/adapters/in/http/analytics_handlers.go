package http

import (
	"fmt"
	"net/http"

	"warehouse/internal/adapters/out/report"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetBins handles GET /layouts/:id/bins?limit=N.
func (s *Server) GetBins(c echo.Context) error {
	layoutID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetBinsQuery(layoutID, limit)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.GetBins.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, binsOf(resp))
}

func (s *Server) heatmap(c echo.Context) (queries.GetHeatmapQueryResponse, error) {
	layoutID, err := pathID(c)
	if err != nil {
		return queries.GetHeatmapQueryResponse{}, err
	}
	days, err := intQuery(c, "days")
	if err != nil {
		return queries.GetHeatmapQueryResponse{}, err
	}
	asOf, err := timeQuery(c, "asOf")
	if err != nil {
		return queries.GetHeatmapQueryResponse{}, err
	}
	query, err := queries.NewGetHeatmapQuery(layoutID, days, asOf)
	if err != nil {
		return queries.GetHeatmapQueryResponse{}, err
	}
	return s.h.GetHeatmap.Handle(c.Request().Context(), query)
}

// GetHeatmap handles GET /layouts/:id/heatmap?days=N&asOf=YYYY-MM-DD.
func (s *Server) GetHeatmap(c echo.Context) error {
	resp, err := s.heatmap(c)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, heatmapOf(resp))
}

// ExportHeatmap handles GET /layouts/:id/heatmap.xlsx. Same parameters as
// GetHeatmap; bins are labelled with their codes from the layout tree.
func (s *Server) ExportHeatmap(c echo.Context) error {
	resp, err := s.heatmap(c)
	if err != nil {
		return s.fail(c, err)
	}

	layoutQuery, err := queries.NewGetLayoutQuery(resp.LayoutID)
	if err != nil {
		return s.fail(c, err)
	}
	tree, err := s.h.GetLayout.Handle(c.Request().Context(), layoutQuery)
	if err != nil {
		return s.fail(c, err)
	}

	codes := make(map[kernel.UUID]string, len(tree.Bins))
	for _, b := range tree.Bins {
		codes[b.ID] = b.Code
	}
	rows := report.HeatmapRows(resp.Data, codes, resp.Statistics.TotalPicks)
	buf, err := report.HeatmapWorkbook(tree.Name, resp.Days, rows, resp.Statistics)
	if err != nil {
		return s.fail(c, err)
	}

	filename := fmt.Sprintf("heatmap-%s-%s.xlsx", resp.LayoutID, resp.Statistics.Date.Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, report.XLSXContentType, buf.Bytes())
}

// GetMetrics handles GET /layouts/:id/metrics?asOf=YYYY-MM-DD.
func (s *Server) GetMetrics(c echo.Context) error {
	layoutID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	asOf, err := timeQuery(c, "asOf")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetMetricsQuery(layoutID, asOf)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.GetMetrics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, metricsOf(resp))
}

// GetMovementAnalytics handles GET /layouts/:id/movements/analytics?from=&to=&limit=.
func (s *Server) GetMovementAnalytics(c echo.Context) error {
	layoutID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	from, fromErr := timeQuery(c, "from")
	to, toErr := timeQuery(c, "to")
	limit, limitErr := intQuery(c, "limit")
	for _, e := range []error{fromErr, toErr, limitErr} {
		if e != nil {
			return s.fail(c, e)
		}
	}
	query, err := queries.NewGetMovementAnalyticsQuery(layoutID, from, to, limit)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.GetMovementAnalytics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, movementAnalyticsOf(resp))
}
