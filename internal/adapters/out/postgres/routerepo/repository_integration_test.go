package routerepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/layoutrepo"
	"warehouse/internal/adapters/out/postgres/pgtest"
	"warehouse/internal/adapters/out/postgres/routerepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/route"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var computedAt = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

type PickRouteRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	tracker    *pgtest.Tracker
	repository *routerepo.GormPickRouteRepository
	layoutID   kernel.UUID
}

func (suite *PickRouteRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *PickRouteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.tracker = &pgtest.Tracker{}
	suite.repository = routerepo.NewGormPickRouteRepository(suite.database.DB, suite.tracker)

	dims, err := kernel.NewDimensions(60, 40, 10)
	suite.Require().NoError(err)
	l, err := layout.NewLayout(kernel.NewUUID(), "Main floor", dims)
	suite.Require().NoError(err)
	suite.Require().NoError(layoutrepo.NewGormLayoutRepository(suite.database.DB, suite.tracker).Add(context.Background(), l))
	suite.layoutID = l.ID()
}

func (suite *PickRouteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *PickRouteRepositoryIntegrationTestSuite) newRoute(orderID kernel.UUID, strategy route.Strategy, at time.Time, bins ...kernel.UUID) *route.PickRoute {
	r, err := route.NewPickRoute(kernel.NewUUID(), orderID, suite.layoutID, strategy, bins, 12.5, 90*time.Second, at)
	suite.Require().NoError(err)
	return r
}

func (suite *PickRouteRepositoryIntegrationTestSuite) TestSave_ThenGetByOrder_KeepsSequence() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	bins := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	saved := suite.newRoute(orderID, route.Optimal, computedAt, bins...)

	suite.Require().NoError(suite.repository.Save(ctx, saved))

	got, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(saved.ID(), got.ID())
	suite.Equal(route.Optimal, got.Strategy())
	suite.Equal(bins, got.Sequence())
	suite.InDelta(12.5, got.TotalDistance(), 1e-9)
	suite.Equal(90*time.Second, got.EstimatedTime())
	suite.True(computedAt.Equal(got.ComputedAt()))
	suite.Equal([]kernel.UUID{saved.ID()}, suite.tracker.IDs[1:])
}

func (suite *PickRouteRepositoryIntegrationTestSuite) TestSave_SameOrder_ReplacesInPlace() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	first := suite.newRoute(orderID, route.Optimal, computedAt, kernel.NewUUID())
	suite.Require().NoError(suite.repository.Save(ctx, first))

	binA, binB := kernel.NewUUID(), kernel.NewUUID()
	recomputed := suite.newRoute(orderID, route.FEFO, computedAt.Add(time.Hour), binA, binB)
	suite.Require().NoError(suite.repository.Save(ctx, recomputed))

	got, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(first.ID(), got.ID())
	suite.Equal(route.FEFO, got.Strategy())
	suite.Equal([]kernel.UUID{binA, binB}, got.Sequence())

	var count int64
	suite.Require().NoError(suite.database.DB.Model(&routerepo.PickRouteDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *PickRouteRepositoryIntegrationTestSuite) TestGetByOrder_Missing_ReturnsNotFound() {
	_, err := suite.repository.GetByOrder(context.Background(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PickRouteRepositoryIntegrationTestSuite) TestGetComputedBetween_HalfOpenWindow() {
	ctx := context.Background()
	dayStart := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	atStart := suite.newRoute(kernel.NewUUID(), route.Optimal, dayStart, kernel.NewUUID())
	inside := suite.newRoute(kernel.NewUUID(), route.Zone, computedAt, kernel.NewUUID())
	atEnd := suite.newRoute(kernel.NewUUID(), route.FIFO, dayEnd, kernel.NewUUID())
	for _, r := range []*route.PickRoute{inside, atEnd, atStart} {
		suite.Require().NoError(suite.repository.Save(ctx, r))
	}

	got, err := suite.repository.GetComputedBetween(ctx, suite.layoutID, dayStart, dayEnd)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(atStart.ID(), got[0].ID())
	suite.Equal(inside.ID(), got[1].ID())
}

func TestPickRouteRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(PickRouteRepositoryIntegrationTestSuite))
}
