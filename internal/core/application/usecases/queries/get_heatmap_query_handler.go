package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
)

// GetHeatmapQueryHandler computes the heatmap from the movement ledger on
// every call; stored daily snapshots are left to reporting.
type GetHeatmapQueryHandler struct {
	readerFactory ReaderFactory
	engine        services.AnalyticsEngine
}

// NewGetHeatmapQueryHandler creates the handler over a reader factory.
func NewGetHeatmapQueryHandler(readerFactory ReaderFactory) GetHeatmapQueryHandler {
	return GetHeatmapQueryHandler{readerFactory: readerFactory, engine: services.NewAnalyticsEngine()}
}

// Handle computes the heatmap from the movement ledger on every call; stored
// snapshots are not consulted.
func (h GetHeatmapQueryHandler) Handle(ctx context.Context, query GetHeatmapQuery) (GetHeatmapQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetHeatmapQueryResponse{}, err
	}

	reader := h.readerFactory.Create()

	if _, err := reader.LayoutRepository().Get(ctx, query.LayoutID()); err != nil {
		return GetHeatmapQueryResponse{}, err
	}

	from, to := analytics.Window(query.Day(), query.Days())
	movements, err := reader.MovementRepository().Find(ctx, query.LayoutID(), from, to)
	if err != nil {
		return GetHeatmapQueryResponse{}, err
	}

	heatmap, err := h.engine.BuildHeatmap(kernel.NewUUID(), query.LayoutID(), query.Day(),
		query.Days(), movements, time.Now())
	if err != nil {
		return GetHeatmapQueryResponse{}, err
	}

	return GetHeatmapQueryResponse{
		LayoutID:   heatmap.LayoutID(),
		Days:       heatmap.Days(),
		Data:       heatmap.Counts(),
		Statistics: heatmap.Statistics(),
	}, nil
}
