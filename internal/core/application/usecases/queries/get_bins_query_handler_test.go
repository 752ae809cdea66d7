package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBinsQuery_Limit(t *testing.T) {
	q, err := queries.NewGetBinsQuery(kernel.NewUUID(), 0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultBinsLimit, q.Limit())

	for _, limit := range []int{-1, queries.MaxBinsLimit + 1} {
		_, err = queries.NewGetBinsQuery(kernel.NewUUID(), limit)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestGetBinsQueryHandler_Handle_TruncatesAndDerivesState(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	full, empty, extra := s.bin(t, "A-S1-01", 0), s.bin(t, "A-S1-02", 1), s.bin(t, "A-S1-03", 2)

	layouts := new(MockLayoutRepository)
	locations := new(MockLocationRepository)
	ledger := new(MockStockLedger)
	reader := new(MockReader)
	reader.On("LayoutRepository").Return(layouts)
	reader.On("LocationRepository").Return(locations)
	reader.On("StockLedger").Return(ledger)
	layouts.On("Get", ctx, s.layout.ID()).Return(s.layout, nil).Once()
	locations.On("GetBinsByLayout", ctx, s.layout.ID()).
		Return([]*location.Location{full, empty, extra}, nil).Once()
	ledger.On("GetStock", ctx, []kernel.UUID{full.ID(), empty.ID()}).
		Return(map[kernel.UUID]stock.Stock{full.ID(): holding(t, full.ID(), 95)}, nil).Once()

	query, err := queries.NewGetBinsQuery(s.layout.ID(), 2)
	require.NoError(t, err)

	got, err := queries.NewGetBinsQueryHandler(readerFactory(reader)).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalCount)
	assert.True(t, got.Truncated)
	require.Len(t, got.Bins, 2)
	assert.Equal(t, location.Full, got.Bins[0].Status)
	assert.True(t, got.Bins[0].Locked)
	assert.InDelta(t, 95.0, got.Bins[0].UtilizationPct, 1e-9)
	assert.Equal(t, "95", got.Bins[0].Weight.String())
	assert.Equal(t, location.Empty, got.Bins[1].Status)
	assert.False(t, got.Bins[1].Locked)
	ledger.AssertExpectations(t)
}

func TestGetBinsQueryHandler_Handle_NotTruncated(t *testing.T) {
	ctx := t.Context()
	s := newSite(t)
	b := s.bin(t, "A-S1-01", 0)

	layouts := new(MockLayoutRepository)
	locations := new(MockLocationRepository)
	ledger := new(MockStockLedger)
	reader := new(MockReader)
	reader.On("LayoutRepository").Return(layouts)
	reader.On("LocationRepository").Return(locations)
	reader.On("StockLedger").Return(ledger)
	layouts.On("Get", ctx, s.layout.ID()).Return(s.layout, nil).Once()
	locations.On("GetBinsByLayout", ctx, s.layout.ID()).Return([]*location.Location{b}, nil).Once()
	ledger.On("GetStock", ctx, []kernel.UUID{b.ID()}).Return(map[kernel.UUID]stock.Stock{}, nil).Once()

	query, err := queries.NewGetBinsQuery(s.layout.ID(), 0)
	require.NoError(t, err)

	got, err := queries.NewGetBinsQueryHandler(readerFactory(reader)).Handle(ctx, query)

	require.NoError(t, err)
	assert.False(t, got.Truncated)
	assert.Equal(t, 1, got.TotalCount)
	assert.Len(t, got.Bins, 1)
}
