package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/stock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

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

func capacity(t *testing.T, maxKg int64) location.Capacity {
	t.Helper()
	c, err := location.NewCapacity(decimal.NewFromInt(maxKg), 0)
	require.NoError(t, err)
	return c
}

// site is a 60 × 40 × 10 layout holding area A (20 × 20 × 5 at the origin)
// with shelf S1 (10 × 2 × 2 at the origin).
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

func (s site) bin(t *testing.T, code string, x float64) *location.Location {
	t.Helper()
	b, err := location.NewBin(kernel.NewUUID(), s.shelf, "bin "+code, code,
		pos(t, x, 0, 0), dims(t, 1, 1, 1), capacity(t, 100))
	require.NoError(t, err)
	return b
}

func (s site) otherShelf(t *testing.T) *location.Location {
	t.Helper()
	shelf, err := location.NewShelf(kernel.NewUUID(), s.area, "Shelf 2", "A-S2", pos(t, 0, 5, 0), dims(t, 10, 2, 2))
	require.NoError(t, err)
	return shelf
}

func holding(t *testing.T, binID kernel.UUID, qty int64, expiresAt *time.Time) stock.Stock {
	t.Helper()
	q, err := stock.NewQuant(binID, kernel.NewUUID(), "LOT-1", expiresAt, decimal.NewFromInt(qty), decimal.NewFromInt(1))
	require.NoError(t, err)
	return stock.Stock{q}
}
