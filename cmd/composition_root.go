package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	planner    commands.RoutePlanner
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	optimizer, err := services.NewRouteOptimizer(
		cfg.RouteWalkingSpeed,
		time.Duration(cfg.RoutePickSeconds*float64(time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("route optimizer: %w", err)
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		planner:    commands.NewRoutePlanner(optimizer, cfg.RouteMaxBins),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) layoutUoWFactory() commands.LayoutUoWFactory {
	return FuncLayoutUoWFactory(func() commands.LayoutUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) hierarchyUoWFactory() commands.HierarchyUoWFactory {
	return FuncHierarchyUoWFactory(func() commands.HierarchyUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) movementUoWFactory() commands.MovementUoWFactory {
	return FuncMovementUoWFactory(func() commands.MovementUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) analyticsUoWFactory() commands.AnalyticsUoWFactory {
	return FuncAnalyticsUoWFactory(func() commands.AnalyticsUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) readerFactory() queries.ReaderFactory {
	return FuncReaderFactory(func() queries.Reader { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateGenerateDailyAnalyticsCommandHandler() commands.GenerateDailyAnalyticsCommandHandler {
	return commands.NewGenerateDailyAnalyticsCommandHandler(c.analyticsUoWFactory())
}

// HTTPHandlers wires every use case the HTTP adapter exposes.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	readers := c.readerFactory()
	return httpin.Handlers{
		CreateLayout:   commands.NewCreateLayoutCommandHandler(c.layoutUoWFactory()),
		CreateZone:     commands.NewCreateZoneCommandHandler(c.layoutUoWFactory()),
		CreateArea:     commands.NewCreateAreaCommandHandler(c.layoutUoWFactory()),
		CreateShelf:    commands.NewCreateShelfCommandHandler(c.hierarchyUoWFactory()),
		CreateBin:      commands.NewCreateBinCommandHandler(c.hierarchyUoWFactory()),
		ResizeShelf:    commands.NewResizeShelfCommandHandler(c.hierarchyUoWFactory()),
		RelocateBin:    commands.NewRelocateBinCommandHandler(c.hierarchyUoWFactory()),
		SetBinBlocked:  commands.NewSetBinBlockedCommandHandler(c.hierarchyUoWFactory()),
		DeleteLocation: commands.NewDeleteLocationCommandHandler(c.hierarchyUoWFactory()),
		RecordMovement: commands.NewRecordMovementCommandHandler(c.movementUoWFactory()),
		OptimizeRoute:  commands.NewOptimizeRouteCommandHandler(c.routeUoWFactory(), c.planner),
		EnsureRoute:    commands.NewEnsureRouteCommandHandler(c.routeUoWFactory(), c.planner),

		GetLayout:            queries.NewGetLayoutQueryHandler(readers),
		GetBins:              queries.NewGetBinsQueryHandler(readers),
		GetBinStock:          queries.NewGetBinStockQueryHandler(readers),
		GetHeatmap:           queries.NewGetHeatmapQueryHandler(readers),
		GetMetrics:           queries.NewGetMetricsQueryHandler(readers),
		GetMovementAnalytics: queries.NewGetMovementAnalyticsQueryHandler(readers),
	}
}

func (c *CompositionRoot) NewEcho() *echo.Echo {
	server := httpin.NewServer(c.HTTPHandlers(), c.logger)
	return httpin.NewEcho(server, httpin.EchoOptions{
		Metrics: c.cfg.MetricsEnabled,
		Docs:    c.cfg.DocsEnabled,
	})
}

// NewJobManager schedules the daily analytics job. Layouts are listed on the
// plain connection; each one is then generated in its own unit of work.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	analyticsJob := jobs.NewDailyAnalyticsJob(
		c.uowFactory.Create().LayoutRepository(),
		c.CreateGenerateDailyAnalyticsCommandHandler(),
		c.cfg.AnalyticsSchedule,
		c.cfg.AnalyticsHeatmapDays,
		c.logger,
	)
	return jobs.NewJobManager(analyticsJob)
}

type FuncLayoutUoWFactory func() commands.LayoutUoW

func (f FuncLayoutUoWFactory) Create() commands.LayoutUoW {
	return f()
}

type FuncHierarchyUoWFactory func() commands.HierarchyUoW

func (f FuncHierarchyUoWFactory) Create() commands.HierarchyUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncMovementUoWFactory func() commands.MovementUoW

func (f FuncMovementUoWFactory) Create() commands.MovementUoW {
	return f()
}

type FuncAnalyticsUoWFactory func() commands.AnalyticsUoW

func (f FuncAnalyticsUoWFactory) Create() commands.AnalyticsUoW {
	return f()
}

type FuncReaderFactory func() queries.Reader

func (f FuncReaderFactory) Create() queries.Reader {
	return f()
}
