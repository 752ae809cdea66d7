package queries_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/core/domain/model/stock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func pos(t *testing.T, x, y, z float64) kernel.Position {
	t.Helper()
	p, err := kernel.NewPosition(x, y, z)
	require.NoError(t, err)
	return p
}

func dims(t *testing.T, w, d, h float64) kernel.Dimensions {
	t.Helper()
	v, err := kernel.NewDimensions(w, d, h)
	require.NoError(t, err)
	return v
}

type site struct {
	layout *layout.Layout
	area   *location.Location
	shelf  *location.Location
}

func newSite(t *testing.T) site {
	t.Helper()
	l, err := layout.NewLayout(kernel.NewUUID(), "Main DC", dims(t, 60, 40, 10))
	require.NoError(t, err)
	area, err := location.NewArea(kernel.NewUUID(), l.ID(), "Area A", "A", pos(t, 0, 0, 0), dims(t, 20, 20, 5))
	require.NoError(t, err)
	shelf, err := location.NewShelf(kernel.NewUUID(), area, "Shelf 1", "A-S1", pos(t, 0, 0, 0), dims(t, 10, 2, 2))
	require.NoError(t, err)
	return site{layout: l, area: area, shelf: shelf}
}

// bin is a 1 m cube at x on the shelf holding at most 100 kg.
func (s site) bin(t *testing.T, code string, x float64) *location.Location {
	t.Helper()
	c, err := location.NewCapacity(decimal.NewFromInt(100), 0)
	require.NoError(t, err)
	b, err := location.NewBin(kernel.NewUUID(), s.shelf, "bin "+code, code, pos(t, x, 0, 0), dims(t, 1, 1, 1), c)
	require.NoError(t, err)
	return b
}

func (s site) zone(t *testing.T, name string, seq int, x float64) *layout.Zone {
	t.Helper()
	z, err := layout.NewZone(kernel.NewUUID(), s.layout.ID(), name, seq, pos(t, x, 0, 0), dims(t, 5, 5, 10), pos(t, x, 0, 0))
	require.NoError(t, err)
	return z
}

// holding puts qty units of 1 kg each into a bin.
func holding(t *testing.T, binID kernel.UUID, qty int64) stock.Stock {
	t.Helper()
	q, err := stock.NewQuant(binID, kernel.NewUUID(), "LOT-7", nil, decimal.NewFromInt(qty), decimal.NewFromInt(1))
	require.NoError(t, err)
	return stock.Stock{q}
}

func moved(t *testing.T, kind movement.Type, source, dest *location.Location, at time.Time) *movement.BinMovement {
	t.Helper()
	m, err := movement.NewBinMovement(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(1), source, dest, kind, at, nil)
	require.NoError(t, err)
	return m
}
