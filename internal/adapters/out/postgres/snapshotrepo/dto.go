// Package snapshotrepo persists the daily heatmap and metrics snapshots.
// Each table holds at most one row per (layout, day).
package snapshotrepo

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type HeatmapSnapshotDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	LayoutID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_heatmap_snapshots_layout_day,priority:1"`
	Day       time.Time      `gorm:"type:date;not null;uniqueIndex:uq_heatmap_snapshots_layout_day,priority:2"`
	Days      int            `gorm:"not null"`
	Counts    map[string]int `gorm:"type:jsonb;not null;serializer:json"`
	CreatedAt time.Time      `gorm:"not null"`
}

func (HeatmapSnapshotDTO) TableName() string {
	return "heatmap_snapshots"
}

type MetricsSnapshotDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	LayoutID           uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_metrics_snapshots_layout_day,priority:1"`
	Day                time.Time   `gorm:"type:date;not null;uniqueIndex:uq_metrics_snapshots_layout_day,priority:2"`
	TotalBins          int         `gorm:"not null"`
	EmptyBins          int         `gorm:"not null"`
	AvailableBins      int         `gorm:"not null"`
	FullBins           int         `gorm:"not null"`
	BlockedBins        int         `gorm:"not null"`
	TotalWeight        float64     `gorm:"not null"`
	TotalMaxWeight     float64     `gorm:"not null"`
	UtilizationPct     float64     `gorm:"not null"`
	TotalPicks         int         `gorm:"not null"`
	TotalDistance      float64     `gorm:"not null"`
	RoutesComputed     int         `gorm:"not null"`
	AvgPickTimeMinutes float64     `gorm:"not null"`
	EfficiencyScore    int         `gorm:"not null"`
	BottleneckZones    []uuid.UUID `gorm:"type:jsonb;not null;serializer:json"`
	CreatedAt          time.Time   `gorm:"not null"`
}

func (MetricsSnapshotDTO) TableName() string {
	return "metrics_snapshots"
}

func heatmapFromDomain(h *analytics.HeatmapSnapshot) HeatmapSnapshotDTO {
	counts := make(map[string]int, len(h.Counts()))
	for binID, n := range h.Counts() {
		counts[binID.String()] = n
	}

	return HeatmapSnapshotDTO{
		ID:        h.ID().Bytes(),
		LayoutID:  h.LayoutID().Bytes(),
		Day:       h.Day(),
		Days:      h.Days(),
		Counts:    counts,
		CreatedAt: h.CreatedAt(),
	}
}

func heatmapToDomain(dto HeatmapSnapshotDTO) (*analytics.HeatmapSnapshot, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	layoutID, layoutErr := kernel.UUIDFromBytes(dto.LayoutID[:])
	if err := errors.Join(idErr, layoutErr); err != nil {
		return nil, err
	}

	counts := make(map[kernel.UUID]int, len(dto.Counts))
	for raw, n := range dto.Counts {
		binID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, err
		}
		counts[binID] = n
	}

	return analytics.NewHeatmapSnapshot(id, layoutID, dto.Day, dto.Days, counts, dto.CreatedAt)
}

func metricsFromDomain(m *analytics.MetricsSnapshot) MetricsSnapshotDTO {
	inv := m.Inventory()
	picking := m.Picking()
	eff := m.Efficiency()

	zones := make([]uuid.UUID, 0, len(eff.BottleneckZones))
	for _, z := range eff.BottleneckZones {
		zones = append(zones, z.Bytes())
	}

	return MetricsSnapshotDTO{
		ID:                 m.ID().Bytes(),
		LayoutID:           m.LayoutID().Bytes(),
		Day:                m.Day(),
		TotalBins:          inv.TotalBins,
		EmptyBins:          inv.EmptyBins,
		AvailableBins:      inv.AvailableBins,
		FullBins:           inv.FullBins,
		BlockedBins:        inv.BlockedBins,
		TotalWeight:        inv.TotalWeight,
		TotalMaxWeight:     inv.TotalMaxWeight,
		UtilizationPct:     inv.UtilizationPct,
		TotalPicks:         picking.TotalPicks,
		TotalDistance:      picking.TotalDistance,
		RoutesComputed:     picking.RoutesComputed,
		AvgPickTimeMinutes: picking.AvgPickTimeMinutes,
		EfficiencyScore:    eff.Score,
		BottleneckZones:    zones,
		CreatedAt:          m.CreatedAt(),
	}
}

func metricsToDomain(dto MetricsSnapshotDTO) (*analytics.MetricsSnapshot, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	layoutID, layoutErr := kernel.UUIDFromBytes(dto.LayoutID[:])
	if err := errors.Join(idErr, layoutErr); err != nil {
		return nil, err
	}

	zones := make([]kernel.UUID, 0, len(dto.BottleneckZones))
	for _, raw := range dto.BottleneckZones {
		z, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return analytics.NewMetricsSnapshot(
		id, layoutID, dto.Day,
		analytics.InventoryMetrics{
			TotalBins:      dto.TotalBins,
			EmptyBins:      dto.EmptyBins,
			AvailableBins:  dto.AvailableBins,
			FullBins:       dto.FullBins,
			BlockedBins:    dto.BlockedBins,
			TotalWeight:    dto.TotalWeight,
			TotalMaxWeight: dto.TotalMaxWeight,
			UtilizationPct: dto.UtilizationPct,
		},
		analytics.PickingMetrics{
			TotalPicks:         dto.TotalPicks,
			TotalDistance:      dto.TotalDistance,
			RoutesComputed:     dto.RoutesComputed,
			AvgPickTimeMinutes: dto.AvgPickTimeMinutes,
		},
		analytics.Efficiency{
			Score:           dto.EfficiencyScore,
			BottleneckZones: zones,
		},
		dto.CreatedAt,
	)
}
