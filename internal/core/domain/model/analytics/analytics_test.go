package analytics_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayAndWindow(t *testing.T) {
	moment := time.Date(2026, 3, 14, 22, 30, 0, 0, time.FixedZone("UTC-3", -3*3600))

	day := analytics.Day(moment)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), day)

	from, to := analytics.Window(day, 7)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), to)
}

func TestHeatmapSnapshot_Statistics(t *testing.T) {
	a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	h, err := analytics.NewHeatmapSnapshot(kernel.NewUUID(), kernel.NewUUID(), time.Now(), 30,
		map[kernel.UUID]int{a: 5, b: 1, c: 0}, time.Now())
	require.NoError(t, err)

	stats := h.Statistics()
	assert.Equal(t, 6, stats.TotalPicks)
	assert.Equal(t, 5, stats.MaxPicks)
	assert.InDelta(t, 3.0, stats.AvgPicks, 1e-9)
	assert.Len(t, h.Counts(), 2)

	sum := 0
	for _, n := range h.Counts() {
		sum += n
	}
	assert.Equal(t, stats.TotalPicks, sum)
}

func TestHeatmapSnapshot_Empty(t *testing.T) {
	h, err := analytics.NewHeatmapSnapshot(kernel.NewUUID(), kernel.NewUUID(), time.Now(), 1, nil, time.Now())
	require.NoError(t, err)

	stats := h.Statistics()
	assert.Zero(t, stats.TotalPicks)
	assert.Zero(t, stats.AvgPicks)
}

func TestHeatmapSnapshot_DaysOutOfRange(t *testing.T) {
	_, err := analytics.NewHeatmapSnapshot(kernel.NewUUID(), kernel.NewUUID(), time.Now(), 0, nil, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewMetricsSnapshot(t *testing.T) {
	zone := kernel.NewUUID()
	inventory := analytics.InventoryMetrics{TotalBins: 4, EmptyBins: 1, AvailableBins: 2, FullBins: 1}

	m, err := analytics.NewMetricsSnapshot(kernel.NewUUID(), kernel.NewUUID(), time.Now(), inventory,
		analytics.PickingMetrics{TotalPicks: 3}, analytics.Efficiency{Score: 70, BottleneckZones: []kernel.UUID{zone}},
		time.Now())
	require.NoError(t, err)
	assert.Equal(t, 70, m.Efficiency().Score)
	assert.Equal(t, []kernel.UUID{zone}, m.Efficiency().BottleneckZones)

	inventory.FullBins = 3
	_, err = analytics.NewMetricsSnapshot(kernel.NewUUID(), kernel.NewUUID(), time.Now(), inventory,
		analytics.PickingMetrics{}, analytics.Efficiency{Score: 70}, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = analytics.NewMetricsSnapshot(kernel.NewUUID(), kernel.NewUUID(), time.Now(),
		analytics.InventoryMetrics{}, analytics.PickingMetrics{}, analytics.Efficiency{Score: 101}, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
