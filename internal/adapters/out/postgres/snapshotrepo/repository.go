package snapshotrepo

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotRepository implements ports.SnapshotRepository using GORM.
type GormSnapshotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormSnapshotRepository(db *gorm.DB, tracker aggregateTracker) *GormSnapshotRepository {
	return &GormSnapshotRepository{
		db:      db,
		tracker: tracker,
	}
}

// dayKey renders the calendar day the way the date columns compare it.
func dayKey(day time.Time) string {
	return analytics.Day(day).Format(time.DateOnly)
}

func (r *GormSnapshotRepository) HeatmapExists(ctx context.Context, layoutID kernel.UUID, day time.Time) (bool, error) {
	return r.exists(ctx, &HeatmapSnapshotDTO{}, layoutID, day)
}

func (r *GormSnapshotRepository) MetricsExists(ctx context.Context, layoutID kernel.UUID, day time.Time) (bool, error) {
	return r.exists(ctx, &MetricsSnapshotDTO{}, layoutID, day)
}

func (r *GormSnapshotRepository) exists(ctx context.Context, model any, layoutID kernel.UUID, day time.Time) (bool, error) {
	if err := layoutID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("layout_id = ? AND day = ?", layoutID.Bytes(), dayKey(day)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddHeatmap inserts with ON CONFLICT DO NOTHING, so a concurrent writer of the
// same (layout, day) makes it report false instead of failing.
func (r *GormSnapshotRepository) AddHeatmap(ctx context.Context, snapshot *analytics.HeatmapSnapshot) (bool, error) {
	if err := snapshot.Validate(); err != nil {
		return false, err
	}

	dto := heatmapFromDomain(snapshot)
	return r.insertOnce(ctx, &dto, snapshot.ID(), snapshot)
}

func (r *GormSnapshotRepository) AddMetrics(ctx context.Context, snapshot *analytics.MetricsSnapshot) (bool, error) {
	if err := snapshot.Validate(); err != nil {
		return false, err
	}

	dto := metricsFromDomain(snapshot)
	return r.insertOnce(ctx, &dto, snapshot.ID(), snapshot)
}

func (r *GormSnapshotRepository) insertOnce(ctx context.Context, dto any, id kernel.UUID, aggregate any) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(dto)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(id, aggregate)
	return true, nil
}

func (r *GormSnapshotRepository) GetHeatmap(
	ctx context.Context,
	layoutID kernel.UUID,
	day time.Time,
) (*analytics.HeatmapSnapshot, error) {
	var dto HeatmapSnapshotDTO
	if err := r.first(ctx, &dto, "heatmap snapshot", layoutID, day); err != nil {
		return nil, err
	}
	return heatmapToDomain(dto)
}

func (r *GormSnapshotRepository) GetMetrics(
	ctx context.Context,
	layoutID kernel.UUID,
	day time.Time,
) (*analytics.MetricsSnapshot, error) {
	var dto MetricsSnapshotDTO
	if err := r.first(ctx, &dto, "metrics snapshot", layoutID, day); err != nil {
		return nil, err
	}
	return metricsToDomain(dto)
}

func (r *GormSnapshotRepository) first(ctx context.Context, dest any, what string, layoutID kernel.UUID, day time.Time) error {
	if err := layoutID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).First(dest, "layout_id = ? AND day = ?", layoutID.Bytes(), dayKey(day)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(what, layoutID.String()+"@"+dayKey(day))
	}
	return err
}
