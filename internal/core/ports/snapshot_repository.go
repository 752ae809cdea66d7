package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
)

// SnapshotRepository stores one heatmap and one metrics snapshot per (layout, day).
// The Add methods report false, without error, when a snapshot for the same
// key already exists.
type SnapshotRepository interface {
	HeatmapExists(ctx context.Context, layoutID kernel.UUID, day time.Time) (bool, error)
	AddHeatmap(ctx context.Context, h *analytics.HeatmapSnapshot) (bool, error)
	GetHeatmap(ctx context.Context, layoutID kernel.UUID, day time.Time) (*analytics.HeatmapSnapshot, error)

	MetricsExists(ctx context.Context, layoutID kernel.UUID, day time.Time) (bool, error)
	AddMetrics(ctx context.Context, m *analytics.MetricsSnapshot) (bool, error)
	GetMetrics(ctx context.Context, layoutID kernel.UUID, day time.Time) (*analytics.MetricsSnapshot, error)
}
