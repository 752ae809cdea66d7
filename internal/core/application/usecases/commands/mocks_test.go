package commands_test

import (
	"context"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/core/domain/model/route"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLayoutRepository struct{ mock.Mock }

func (m *MockLayoutRepository) Add(ctx context.Context, l *layout.Layout) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLayoutRepository) Get(ctx context.Context, id kernel.UUID) (*layout.Layout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*layout.Layout), args.Error(1)
}

func (m *MockLayoutRepository) GetAll(ctx context.Context) ([]*layout.Layout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*layout.Layout), args.Error(1)
}

func (m *MockLayoutRepository) AddZone(ctx context.Context, z *layout.Zone) error {
	return m.Called(ctx, z).Error(0)
}

func (m *MockLayoutRepository) GetZones(ctx context.Context, layoutID kernel.UUID) ([]*layout.Zone, error) {
	args := m.Called(ctx, layoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*layout.Zone), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLocationRepository) AddMany(ctx context.Context, ls []*location.Location) error {
	return m.Called(ctx, ls).Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, l *location.Location) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLocationRepository) Delete(ctx context.Context, ids []kernel.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	return m.one(m.Called(ctx, id))
}

func (m *MockLocationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	return m.one(m.Called(ctx, id))
}

func (m *MockLocationRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*location.Location, error) {
	return m.many(m.Called(ctx, ids))
}

func (m *MockLocationRepository) GetDescendants(ctx context.Context, id kernel.UUID) ([]*location.Location, error) {
	return m.many(m.Called(ctx, id))
}

func (m *MockLocationRepository) GetByLayout(ctx context.Context, layoutID kernel.UUID) ([]*location.Location, error) {
	return m.many(m.Called(ctx, layoutID))
}

func (m *MockLocationRepository) GetBinsByLayout(ctx context.Context, layoutID kernel.UUID) ([]*location.Location, error) {
	return m.many(m.Called(ctx, layoutID))
}

func (m *MockLocationRepository) one(args mock.Arguments) (*location.Location, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) many(args mock.Arguments) ([]*location.Location, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*location.Location), args.Error(1)
}

type MockStockLedger struct{ mock.Mock }

func (m *MockStockLedger) GetStock(ctx context.Context, binIDs []kernel.UUID) (map[kernel.UUID]stock.Stock, error) {
	args := m.Called(ctx, binIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]stock.Stock), args.Error(1)
}

type MockPickListProvider struct{ mock.Mock }

func (m *MockPickListProvider) GetRequiredBins(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockPickRouteRepository struct{ mock.Mock }

func (m *MockPickRouteRepository) Save(ctx context.Context, r *route.PickRoute) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockPickRouteRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*route.PickRoute, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.PickRoute), args.Error(1)
}

func (m *MockPickRouteRepository) GetComputedBetween(
	ctx context.Context, layoutID kernel.UUID, from, to time.Time,
) ([]*route.PickRoute, error) {
	args := m.Called(ctx, layoutID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.PickRoute), args.Error(1)
}

type MockMovementRepository struct{ mock.Mock }

func (m *MockMovementRepository) Add(ctx context.Context, mv *movement.BinMovement) error {
	return m.Called(ctx, mv).Error(0)
}

func (m *MockMovementRepository) Find(
	ctx context.Context, layoutID kernel.UUID, from, to time.Time,
) ([]*movement.BinMovement, error) {
	args := m.Called(ctx, layoutID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*movement.BinMovement), args.Error(1)
}

func (m *MockMovementRepository) LastPickTimes(ctx context.Context, binIDs []kernel.UUID) (map[kernel.UUID]time.Time, error) {
	args := m.Called(ctx, binIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]time.Time), args.Error(1)
}

func (m *MockMovementRepository) CountPicks(ctx context.Context, binID kernel.UUID, since time.Time) (int, error) {
	args := m.Called(ctx, binID, since)
	return args.Int(0), args.Error(1)
}

type MockSnapshotRepository struct{ mock.Mock }

func (m *MockSnapshotRepository) HeatmapExists(ctx context.Context, layoutID kernel.UUID, day time.Time) (bool, error) {
	args := m.Called(ctx, layoutID, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockSnapshotRepository) AddHeatmap(ctx context.Context, h *analytics.HeatmapSnapshot) (bool, error) {
	args := m.Called(ctx, h)
	return args.Bool(0), args.Error(1)
}

func (m *MockSnapshotRepository) GetHeatmap(
	ctx context.Context, layoutID kernel.UUID, day time.Time,
) (*analytics.HeatmapSnapshot, error) {
	args := m.Called(ctx, layoutID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.HeatmapSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) MetricsExists(ctx context.Context, layoutID kernel.UUID, day time.Time) (bool, error) {
	args := m.Called(ctx, layoutID, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockSnapshotRepository) AddMetrics(ctx context.Context, s *analytics.MetricsSnapshot) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

func (m *MockSnapshotRepository) GetMetrics(
	ctx context.Context, layoutID kernel.UUID, day time.Time,
) (*analytics.MetricsSnapshot, error) {
	args := m.Called(ctx, layoutID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.MetricsSnapshot), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) LayoutRepository() ports.LayoutRepository {
	return m.Called().Get(0).(ports.LayoutRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	return m.Called().Get(0).(ports.LocationRepository)
}

func (m *MockUoW) StockLedger() ports.StockLedger {
	return m.Called().Get(0).(ports.StockLedger)
}

func (m *MockUoW) PickListProvider() ports.PickListProvider {
	return m.Called().Get(0).(ports.PickListProvider)
}

func (m *MockUoW) PickRouteRepository() ports.PickRouteRepository {
	return m.Called().Get(0).(ports.PickRouteRepository)
}

func (m *MockUoW) MovementRepository() ports.MovementRepository {
	return m.Called().Get(0).(ports.MovementRepository)
}

func (m *MockUoW) SnapshotRepository() ports.SnapshotRepository {
	return m.Called().Get(0).(ports.SnapshotRepository)
}

type MockLayoutUoWFactory struct{ mock.Mock }

func (m *MockLayoutUoWFactory) Create() commands.LayoutUoW {
	return m.Called().Get(0).(commands.LayoutUoW)
}

type MockHierarchyUoWFactory struct{ mock.Mock }

func (m *MockHierarchyUoWFactory) Create() commands.HierarchyUoW {
	return m.Called().Get(0).(commands.HierarchyUoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	return m.Called().Get(0).(commands.RouteUoW)
}

type MockMovementUoWFactory struct{ mock.Mock }

func (m *MockMovementUoWFactory) Create() commands.MovementUoW {
	return m.Called().Get(0).(commands.MovementUoW)
}

type MockAnalyticsUoWFactory struct{ mock.Mock }

func (m *MockAnalyticsUoWFactory) Create() commands.AnalyticsUoW {
	return m.Called().Get(0).(commands.AnalyticsUoW)
}
