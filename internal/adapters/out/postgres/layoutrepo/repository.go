package layoutrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLayoutRepository implements ports.LayoutRepository using GORM.
type GormLayoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLayoutRepository(db *gorm.DB, tracker aggregateTracker) *GormLayoutRepository {
	return &GormLayoutRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLayoutRepository) Add(ctx context.Context, aggregate *layout.Layout) error {
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

func (r *GormLayoutRepository) Get(ctx context.Context, id kernel.UUID) (*layout.Layout, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LayoutDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("layout", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll lists layouts by name; the daily analytics job walks them in this order.
func (r *GormLayoutRepository) GetAll(ctx context.Context) ([]*layout.Layout, error) {
	var dtos []LayoutDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	layouts := make([]*layout.Layout, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}
	return layouts, nil
}

func (r *GormLayoutRepository) AddZone(ctx context.Context, zone *layout.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	dto := zoneFromDomain(zone)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(zone.ID(), zone)
	return nil
}

func (r *GormLayoutRepository) GetZones(ctx context.Context, layoutID kernel.UUID) ([]*layout.Zone, error) {
	if err := layoutID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).
		Where("layout_id = ?", layoutID.Bytes()).
		Order("sequence, name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]*layout.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := zoneToDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}
