package movementrepo

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMovementRepository implements ports.MovementRepository using GORM.
// Rows are never updated or deleted.
type GormMovementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMovementRepository(db *gorm.DB, tracker aggregateTracker) *GormMovementRepository {
	return &GormMovementRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMovementRepository) Add(ctx context.Context, aggregate *movement.BinMovement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMovementRepository) Find(
	ctx context.Context,
	layoutID kernel.UUID,
	from, to time.Time,
) ([]*movement.BinMovement, error) {
	if err := layoutID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BinMovementDTO
	if err := r.db.WithContext(ctx).
		Where("layout_id = ? AND occurred_at >= ? AND occurred_at < ?", layoutID.Bytes(), from.UTC(), to.UTC()).
		Order("occurred_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	movements := make([]*movement.BinMovement, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}

type lastPickRow struct {
	SourceBinID uuid.UUID
	LastPicked  time.Time
}

func (r *GormMovementRepository) LastPickTimes(ctx context.Context, binIDs []kernel.UUID) (map[kernel.UUID]time.Time, error) {
	result := make(map[kernel.UUID]time.Time, len(binIDs))
	if len(binIDs) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(binIDs))
	for _, id := range binIDs {
		ids = append(ids, id.Bytes())
	}

	var rows []lastPickRow
	if err := r.db.WithContext(ctx).
		Model(&BinMovementDTO{}).
		Select("source_bin_id, MAX(occurred_at) AS last_picked").
		Where("type = ? AND source_bin_id IN ?", movement.Pick.String(), ids).
		Group("source_bin_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		binID, err := kernel.UUIDFromBytes(row.SourceBinID[:])
		if err != nil {
			return nil, err
		}
		result[binID] = row.LastPicked.UTC()
	}
	return result, nil
}

func (r *GormMovementRepository) CountPicks(ctx context.Context, binID kernel.UUID, since time.Time) (int, error) {
	if err := binID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&BinMovementDTO{}).
		Where("type = ? AND source_bin_id = ? AND occurred_at >= ?", movement.Pick.String(), binID.Bytes(), since.UTC()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
