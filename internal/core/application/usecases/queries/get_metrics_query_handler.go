package queries

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// GetMetricsQueryHandler returns the stored metrics snapshot of a day. Without
// one it computes the metrics live and marks the response as such; nothing is
// persisted on this path.
//
// Example:
//
//	handler := NewGetMetricsQueryHandler(readerFactory)
//	query, _ := NewGetMetricsQuery(layoutID, time.Now())
//	resp, err := handler.Handle(ctx, query)
//	if err == nil && resp.Live {
//	    log.Println("Snapshot not generated yet")
//	}
type GetMetricsQueryHandler struct {
	readerFactory ReaderFactory
	engine        services.AnalyticsEngine
	now           func() time.Time
}

// NewGetMetricsQueryHandler creates the handler over a reader factory.
func NewGetMetricsQueryHandler(readerFactory ReaderFactory) GetMetricsQueryHandler {
	return GetMetricsQueryHandler{readerFactory: readerFactory, engine: services.NewAnalyticsEngine(), now: time.Now}
}

// Handle never persists a live computation; snapshots are written by the daily job only.
func (h GetMetricsQueryHandler) Handle(ctx context.Context, query GetMetricsQuery) (GetMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMetricsQueryResponse{}, err
	}

	reader := h.readerFactory.Create()

	if _, err := reader.LayoutRepository().Get(ctx, query.LayoutID()); err != nil {
		return GetMetricsQueryResponse{}, err
	}

	stored, err := reader.SnapshotRepository().GetMetrics(ctx, query.LayoutID(), query.Day())
	switch {
	case err == nil:
		return metricsResponse(stored, false), nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return GetMetricsQueryResponse{}, err
	}

	live, err := h.compute(ctx, reader, query.LayoutID(), query.Day())
	if err != nil {
		return GetMetricsQueryResponse{}, err
	}
	return metricsResponse(live, true), nil
}

func (h GetMetricsQueryHandler) compute(
	ctx context.Context,
	reader Reader,
	layoutID kernel.UUID,
	day time.Time,
) (*analytics.MetricsSnapshot, error) {
	from, to := analytics.Window(day, 1)

	bins, err := reader.LocationRepository().GetBinsByLayout(ctx, layoutID)
	if err != nil {
		return nil, err
	}
	content, err := reader.StockLedger().GetStock(ctx, binIDs(bins))
	if err != nil {
		return nil, err
	}
	zones, err := reader.LayoutRepository().GetZones(ctx, layoutID)
	if err != nil {
		return nil, err
	}
	routes, err := reader.PickRouteRepository().GetComputedBetween(ctx, layoutID, from, to)
	if err != nil {
		return nil, err
	}
	movements, err := reader.MovementRepository().Find(ctx, layoutID, from, to)
	if err != nil {
		return nil, err
	}

	return h.engine.BuildMetrics(services.MetricsInput{
		SnapshotID: kernel.NewUUID(),
		LayoutID:   layoutID,
		Day:        day,
		Bins:       bins,
		Stock:      content,
		Zones:      zones,
		Routes:     routes,
		Movements:  movements,
		Now:        h.now(),
	})
}

func metricsResponse(s *analytics.MetricsSnapshot, live bool) GetMetricsQueryResponse {
	return GetMetricsQueryResponse{
		LayoutID:   s.LayoutID(),
		Day:        s.Day(),
		Inventory:  s.Inventory(),
		Picking:    s.Picking(),
		Efficiency: s.Efficiency(),
		Live:       live,
		CreatedAt:  s.CreatedAt(),
	}
}
