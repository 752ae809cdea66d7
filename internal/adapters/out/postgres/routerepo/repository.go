package routerepo

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/route"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPickRouteRepository implements ports.PickRouteRepository using GORM.
type GormPickRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPickRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormPickRouteRepository {
	return &GormPickRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts on order_id. The row keeps its original id when the route is recomputed.
func (r *GormPickRouteRepository) Save(ctx context.Context, aggregate *route.PickRoute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"layout_id", "strategy", "sequence", "total_distance", "estimated_time_ms", "computed_at",
			}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPickRouteRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*route.PickRoute, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PickRouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pick route of order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPickRouteRepository) GetComputedBetween(
	ctx context.Context,
	layoutID kernel.UUID,
	from, to time.Time,
) ([]*route.PickRoute, error) {
	if err := layoutID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PickRouteDTO
	if err := r.db.WithContext(ctx).
		Where("layout_id = ? AND computed_at >= ? AND computed_at < ?", layoutID.Bytes(), from.UTC(), to.UTC()).
		Order("computed_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	routes := make([]*route.PickRoute, 0, len(dtos))
	for _, dto := range dtos {
		pr, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, pr)
	}
	return routes, nil
}
