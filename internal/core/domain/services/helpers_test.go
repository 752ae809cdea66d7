package services_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/services"

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

func stop(t *testing.T, x, y, z float64) services.RouteStop {
	t.Helper()
	return services.RouteStop{BinID: kernel.NewUUID(), Position: pos(t, x, y, z)}
}

func ids(stops []services.RouteStop) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(stops))
	for _, s := range stops {
		out = append(out, s.BinID)
	}
	return out
}

func zone(t *testing.T, layoutID kernel.UUID, seq int, x, y, w, d float64) *layout.Zone {
	t.Helper()
	z, err := layout.NewZone(kernel.NewUUID(), layoutID, "zone", seq, pos(t, x, y, 0), dims(t, w, d, 3), pos(t, x, y, 0))
	require.NoError(t, err)
	return z
}

// floor is one area holding a single 40 × 10 m shelf, enough room for any test bin.
type floor struct {
	layoutID kernel.UUID
	shelf    *location.Location
}

func newFloor(t *testing.T) floor {
	t.Helper()
	layoutID := kernel.NewUUID()
	area, err := location.NewArea(kernel.NewUUID(), layoutID, "Area", "A", pos(t, 0, 0, 0), dims(t, 40, 20, 5))
	require.NoError(t, err)
	shelf, err := location.NewShelf(kernel.NewUUID(), area, "Shelf", "A-S1", pos(t, 0, 0, 0), dims(t, 40, 10, 2))
	require.NoError(t, err)
	return floor{layoutID: layoutID, shelf: shelf}
}

func (f floor) bin(t *testing.T, x, y float64, maxWeightKg int64) *location.Location {
	t.Helper()
	c, err := location.NewCapacity(decimal.NewFromInt(maxWeightKg), 0)
	require.NoError(t, err)
	b, err := location.NewBin(kernel.NewUUID(), f.shelf, "bin", "A-S1-B", pos(t, x, y, 0), dims(t, 0.5, 0.5, 0.5), c)
	require.NoError(t, err)
	return b
}

func quant(t *testing.T, binID kernel.UUID, qty, unitWeight float64, expiresAt *time.Time) stock.Quant {
	t.Helper()
	q, err := stock.NewQuant(binID, kernel.NewUUID(), "LOT-1", expiresAt,
		decimal.NewFromFloat(qty), decimal.NewFromFloat(unitWeight))
	require.NoError(t, err)
	return q
}

func move(
	t *testing.T,
	kind movement.Type,
	source, dest *location.Location,
	at time.Time,
) *movement.BinMovement {
	t.Helper()
	m, err := movement.NewBinMovement(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(1), source, dest, kind, at, nil)
	require.NoError(t, err)
	return m
}
