package locationrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// treeOrder sorts areas before shelves before bins, then by code.
const treeOrder = "CASE kind WHEN 'area' THEN 1 WHEN 'shelf' THEN 2 ELSE 3 END, code, id"

const descendantsQuery = `
WITH RECURSIVE subtree AS (
    SELECT * FROM locations WHERE parent_id = ?
    UNION ALL
    SELECT child.* FROM locations child JOIN subtree ON child.parent_id = subtree.id
)
SELECT * FROM subtree ORDER BY ` + treeOrder

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
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

// AddMany inserts a batch in one statement; nothing is written when any node is invalid.
func (r *GormLocationRepository) AddMany(ctx context.Context, aggregates []*location.Location) error {
	if len(aggregates) == 0 {
		return nil
	}

	dtos := make([]LocationDTO, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, aggregate := range aggregates {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

func (r *GormLocationRepository) Update(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&dto).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("location", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLocationRepository) Delete(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("id IN ?", idBytes(ids)).
		Delete(&LocationDTO{}).Error
}

func (r *GormLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// GetForUpdate reads the row with SELECT ... FOR UPDATE. Outside a transaction
// the lock is released as soon as the statement finishes.
func (r *GormLocationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormLocationRepository) first(db *gorm.DB, id kernel.UUID) (*location.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLocationRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*location.Location, error) {
	if len(ids) == 0 {
		return []*location.Location{}, nil
	}

	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).
		Where("id IN ?", idBytes(ids)).
		Order(treeOrder).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormLocationRepository) GetDescendants(ctx context.Context, id kernel.UUID) ([]*location.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Raw(descendantsQuery, id.Bytes()).Scan(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormLocationRepository) GetByLayout(ctx context.Context, layoutID kernel.UUID) ([]*location.Location, error) {
	if err := layoutID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).
		Where("layout_id = ?", layoutID.Bytes()).
		Order(treeOrder).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormLocationRepository) GetBinsByLayout(ctx context.Context, layoutID kernel.UUID) ([]*location.Location, error) {
	if err := layoutID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).
		Where("layout_id = ? AND kind = ?", layoutID.Bytes(), location.Bin.String()).
		Order("code, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}
