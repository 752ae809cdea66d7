package analytics

import (
	"errors"
	"slices"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const MaxEfficiencyScore = 100

var ErrMetricsSnapshotIsNotConstructed = errors.New("MetricsSnapshot must be created via NewMetricsSnapshot constructor")

// InventoryMetrics counts bins by derived status and sums their load.
type InventoryMetrics struct {
	TotalBins      int
	EmptyBins      int
	AvailableBins  int
	FullBins       int
	BlockedBins    int
	TotalWeight    float64
	TotalMaxWeight float64
	UtilizationPct float64
}

// PickingMetrics describes the day's picking activity.
type PickingMetrics struct {
	// TotalPicks counts pick movements of the day. Putaways and transfers
	// are left out, unlike HeatmapStatistics.TotalPicks.
	TotalPicks         int
	TotalDistance      float64
	RoutesComputed     int
	AvgPickTimeMinutes float64
}

// Efficiency is the 0..100 score plus the zones flagged as bottlenecks.
type Efficiency struct {
	Score           int
	BottleneckZones []kernel.UUID
}

// MetricsSnapshot is the stored inventory, picking and efficiency summary of
// one layout and day. At most one exists per (layout, day).
type MetricsSnapshot struct {
	id         kernel.UUID
	layoutID   kernel.UUID
	day        time.Time
	inventory  InventoryMetrics
	picking    PickingMetrics
	efficiency Efficiency
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewMetricsSnapshot checks the score range and that the bin status counts add
// up to TotalBins.
func NewMetricsSnapshot(
	id, layoutID kernel.UUID,
	day time.Time,
	inventory InventoryMetrics,
	picking PickingMetrics,
	efficiency Efficiency,
	createdAt time.Time,
) (*MetricsSnapshot, error) {
	if err := errors.Join(id.Validate(), layoutID.Validate()); err != nil {
		return nil, err
	}
	if efficiency.Score < 0 || efficiency.Score > MaxEfficiencyScore {
		return nil, errs.NewValueIsOutOfRangeError("efficiency score", efficiency.Score, 0, MaxEfficiencyScore)
	}
	if sum := inventory.EmptyBins + inventory.AvailableBins + inventory.FullBins + inventory.BlockedBins; sum != inventory.TotalBins {
		return nil, errs.NewValueIsInvalidErrorWithCause("inventory metrics",
			errors.New("status counts do not add up to the bin total"))
	}

	efficiency.BottleneckZones = slices.Clone(efficiency.BottleneckZones)

	return &MetricsSnapshot{
		id:         id,
		layoutID:   layoutID,
		day:        Day(day),
		inventory:  inventory,
		picking:    picking,
		efficiency: efficiency,
		createdAt:  createdAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (m *MetricsSnapshot) Validate() error {
	if m == nil {
		return ErrMetricsSnapshotIsNotConstructed
	}
	return m.guard.Validate(ErrMetricsSnapshotIsNotConstructed)
}

func (m *MetricsSnapshot) ID() kernel.UUID { return m.id }

func (m *MetricsSnapshot) LayoutID() kernel.UUID { return m.layoutID }

func (m *MetricsSnapshot) Day() time.Time { return m.day }

func (m *MetricsSnapshot) Inventory() InventoryMetrics { return m.inventory }

func (m *MetricsSnapshot) Picking() PickingMetrics { return m.picking }

// Efficiency returns a copy; the bottleneck list is not shared.
func (m *MetricsSnapshot) Efficiency() Efficiency {
	e := m.efficiency
	e.BottleneckZones = slices.Clone(e.BottleneckZones)
	return e
}

func (m *MetricsSnapshot) CreatedAt() time.Time { return m.createdAt }
