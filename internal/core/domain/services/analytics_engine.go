package services

import (
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/core/domain/model/route"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// BottleneckShare is the share of a day's picks above which a zone is flagged.
const BottleneckShare = 0.30

// MetricsInput is everything the engine needs to build one day's metrics snapshot.
// Movements and Routes must already be restricted to the layout and day.
type MetricsInput struct {
	SnapshotID kernel.UUID
	LayoutID   kernel.UUID
	Day        time.Time
	Bins       []*location.Location
	Stock      map[kernel.UUID]stock.Stock
	Zones      []*layout.Zone
	Routes     []*route.PickRoute
	Movements  []*movement.BinMovement
	Now        time.Time
}

// AnalyticsEngine builds the daily heatmap and metrics snapshots.
type AnalyticsEngine struct {
	bins BinStateEngine
}

// NewAnalyticsEngine creates an engine that derives bin states with BinStateEngine.
func NewAnalyticsEngine() AnalyticsEngine {
	return AnalyticsEngine{bins: NewBinStateEngine()}
}

// BuildHeatmap counts movements per destination bin over the trailing days
// window ending with day. Movements of other layouts or outside the window are ignored.
func (AnalyticsEngine) BuildHeatmap(
	snapshotID, layoutID kernel.UUID,
	day time.Time,
	days int,
	movements []*movement.BinMovement,
	now time.Time,
) (*analytics.HeatmapSnapshot, error) {
	if days < 1 || days > analytics.MaxHeatmapDays {
		return nil, errs.NewValueIsOutOfRangeError("days", days, 1, analytics.MaxHeatmapDays)
	}

	from, to := analytics.Window(day, days)
	counts := make(map[kernel.UUID]int)
	for _, m := range movements {
		if !m.LayoutID().IsEqual(layoutID) || m.OccurredAt().Before(from) || !m.OccurredAt().Before(to) {
			continue
		}
		counts[m.DestinationBinID()]++
	}

	return analytics.NewHeatmapSnapshot(snapshotID, layoutID, day, days, counts, now)
}

// BuildMetrics derives bin states, picking speed, bottleneck zones and the
// efficiency score for one layout and day.
func (e AnalyticsEngine) BuildMetrics(in MetricsInput) (*analytics.MetricsSnapshot, error) {
	inventory := e.inventoryMetrics(in.Bins, in.Stock)
	picking := pickingMetrics(in.Routes, in.Movements)

	positions := make(map[kernel.UUID]kernel.Position, len(in.Bins))
	for _, b := range in.Bins {
		positions[b.ID()] = b.Position()
	}
	bottlenecks := FindBottleneckZones(in.Zones, in.Movements, positions)

	efficiency := analytics.Efficiency{
		Score:           EfficiencyScore(inventory.UtilizationPct, picking.AvgPickTimeMinutes, len(bottlenecks)),
		BottleneckZones: bottlenecks,
	}

	return analytics.NewMetricsSnapshot(in.SnapshotID, in.LayoutID, in.Day, inventory, picking, efficiency, in.Now)
}

func (e AnalyticsEngine) inventoryMetrics(bins []*location.Location, content map[kernel.UUID]stock.Stock) analytics.InventoryMetrics {
	var m analytics.InventoryMetrics
	totalWeight, totalMax := decimal.Zero, decimal.Zero

	for _, b := range bins {
		if !b.IsBin() {
			continue
		}
		s := content[b.ID()]
		m.TotalBins++

		switch e.bins.DeriveStatus(b, s) {
		case location.Empty:
			m.EmptyBins++
		case location.Full:
			m.FullBins++
		case location.Blocked:
			m.BlockedBins++
		default:
			m.AvailableBins++
		}

		totalWeight = totalWeight.Add(s.TotalWeight())
		totalMax = totalMax.Add(b.Capacity().MaxWeight())
	}

	m.TotalWeight = totalWeight.InexactFloat64()
	m.TotalMaxWeight = totalMax.InexactFloat64()
	if totalMax.IsPositive() {
		m.UtilizationPct = totalWeight.Div(totalMax).Mul(hundred).InexactFloat64()
	}
	return m
}

func pickingMetrics(routes []*route.PickRoute, movements []*movement.BinMovement) analytics.PickingMetrics {
	var m analytics.PickingMetrics
	for _, mv := range movements {
		m.TotalDistance += mv.Distance()
		if mv.Type() == movement.Pick {
			m.TotalPicks++
		}
	}

	var estimated time.Duration
	var binCount int
	for _, r := range routes {
		estimated += r.EstimatedTime()
		binCount += r.BinCount()
	}
	m.RoutesComputed = len(routes)
	if binCount > 0 {
		m.AvgPickTimeMinutes = estimated.Minutes() / float64(binCount)
	}
	return m
}

// FindBottleneckZones returns, in visiting order, the zones whose share of the
// pick movements exceeds BottleneckShare. A pick belongs to the zone covering
// the bin it was taken from.
func FindBottleneckZones(
	zones []*layout.Zone,
	movements []*movement.BinMovement,
	binPositions map[kernel.UUID]kernel.Position,
) []kernel.UUID {
	sorted := layout.SortBySequence(zones)
	perZone := make(map[kernel.UUID]int, len(sorted))
	total := 0

	for _, m := range movements {
		if m.Type() != movement.Pick {
			continue
		}
		total++

		src := m.SourceBinID()
		if src == nil {
			continue
		}
		p, ok := binPositions[*src]
		if !ok {
			continue
		}
		if z := layout.ZoneOf(sorted, p); z != nil {
			perZone[z.ID()]++
		}
	}

	flagged := make([]kernel.UUID, 0)
	if total == 0 {
		return flagged
	}
	for _, z := range sorted {
		if float64(perZone[z.ID()])/float64(total) > BottleneckShare {
			flagged = append(flagged, z.ID())
		}
	}
	return flagged
}

// EfficiencyScore adds three banded components:
//
//	utilisation (max 40): 40–80% → 40; 20–40% or 80–90% → 25; otherwise 10
//	speed       (max 30): ≤2 min → 30; ≤5 min → 15; otherwise 5
//	balance     (max 30): no bottleneck → 30; one → 15; more → 5
func EfficiencyScore(utilizationPct, avgPickMinutes float64, bottlenecks int) int {
	var score int

	switch {
	case utilizationPct >= 40 && utilizationPct <= 80:
		score += 40
	case utilizationPct >= 20 && utilizationPct <= 90:
		score += 25
	default:
		score += 10
	}

	switch {
	case avgPickMinutes <= 2:
		score += 30
	case avgPickMinutes <= 5:
		score += 15
	default:
		score += 5
	}

	switch bottlenecks {
	case 0:
		score += 30
	case 1:
		score += 15
	default:
		score += 5
	}

	return score
}
