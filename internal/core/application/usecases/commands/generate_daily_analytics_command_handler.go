package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
)

// DailyAnalyticsResult tells which snapshots this run created. Both false
// means the day had already been generated.
type DailyAnalyticsResult struct {
	HeatmapCreated bool
	MetricsCreated bool
}

// GenerateDailyAnalyticsCommandHandler is check-then-create per snapshot
// inside one unit of work. The store's unique (layout, day) key turns a racing
// duplicate insert into a no-op as well.
type GenerateDailyAnalyticsCommandHandler struct {
	uowFactory AnalyticsUoWFactory
	engine     services.AnalyticsEngine
	now        func() time.Time
}

// NewGenerateDailyAnalyticsCommandHandler creates the handler with a fresh AnalyticsEngine.
func NewGenerateDailyAnalyticsCommandHandler(uowFactory AnalyticsUoWFactory) GenerateDailyAnalyticsCommandHandler {
	return GenerateDailyAnalyticsCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewAnalyticsEngine(),
		now:        time.Now,
	}
}

// Handle creates whichever of the day's heatmap and metrics snapshots is still
// missing and reports which ones it wrote.
func (h GenerateDailyAnalyticsCommandHandler) Handle(
	ctx context.Context,
	command GenerateDailyAnalyticsCommand,
) (DailyAnalyticsResult, error) {
	var result DailyAnalyticsResult
	if err := command.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	floor, err := uow.LayoutRepository().Get(ctx, command.LayoutID())
	if err != nil {
		return result, err
	}
	snapshots := uow.SnapshotRepository()

	heatmapExists, err := snapshots.HeatmapExists(ctx, floor.ID(), command.Day())
	if err != nil {
		return result, err
	}
	metricsExists, err := snapshots.MetricsExists(ctx, floor.ID(), command.Day())
	if err != nil {
		return result, err
	}
	if heatmapExists && metricsExists {
		return result, nil
	}

	movements := uow.MovementRepository()

	if !heatmapExists {
		from, to := analytics.Window(command.Day(), command.HeatmapDays())
		window, findErr := movements.Find(ctx, floor.ID(), from, to)
		if findErr != nil {
			return result, findErr
		}

		heatmap, buildErr := h.engine.BuildHeatmap(kernel.NewUUID(), floor.ID(), command.Day(),
			command.HeatmapDays(), window, h.now())
		if buildErr != nil {
			return result, buildErr
		}
		if result.HeatmapCreated, err = snapshots.AddHeatmap(ctx, heatmap); err != nil {
			return result, err
		}
	}

	if !metricsExists {
		snapshot, buildErr := h.buildMetrics(ctx, uow, floor.ID(), command.Day())
		if buildErr != nil {
			return result, buildErr
		}
		if result.MetricsCreated, err = snapshots.AddMetrics(ctx, snapshot); err != nil {
			return result, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return DailyAnalyticsResult{}, err
	}
	return result, nil
}

func (h GenerateDailyAnalyticsCommandHandler) buildMetrics(
	ctx context.Context,
	uow AnalyticsUoW,
	layoutID kernel.UUID,
	day time.Time,
) (*analytics.MetricsSnapshot, error) {
	from, to := analytics.Window(day, 1)

	bins, err := uow.LocationRepository().GetBinsByLayout(ctx, layoutID)
	if err != nil {
		return nil, err
	}
	content, err := uow.StockLedger().GetStock(ctx, ids(bins))
	if err != nil {
		return nil, err
	}
	zones, err := uow.LayoutRepository().GetZones(ctx, layoutID)
	if err != nil {
		return nil, err
	}
	routes, err := uow.PickRouteRepository().GetComputedBetween(ctx, layoutID, from, to)
	if err != nil {
		return nil, err
	}
	dayMovements, err := uow.MovementRepository().Find(ctx, layoutID, from, to)
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
		Movements:  dayMovements,
		Now:        h.now(),
	})
}
