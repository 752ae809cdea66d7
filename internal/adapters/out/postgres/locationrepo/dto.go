// Package locationrepo persists the Area → Shelf → Bin tree in a single
// self-referencing table.
package locationrepo

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LocationDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LayoutID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_locations_layout_kind_code,priority:1"`
	ParentID    *uuid.UUID      `gorm:"type:uuid;index"`
	Kind        string          `gorm:"type:varchar(8);not null;index:idx_locations_layout_kind_code,priority:2"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Code        string          `gorm:"type:varchar(64);not null;index:idx_locations_layout_kind_code,priority:3"`
	X           float64         `gorm:"not null"`
	Y           float64         `gorm:"not null"`
	Z           float64         `gorm:"not null"`
	Width       float64         `gorm:"not null"`
	Depth       float64         `gorm:"not null"`
	Height      float64         `gorm:"not null"`
	MaxWeight   decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0"`
	MaxItems    int64           `gorm:"not null;default:0"`
	Blocked     bool            `gorm:"not null;default:false"`
	BlockReason string          `gorm:"type:text;not null;default:''"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(l *location.Location) LocationDTO {
	var parentID *uuid.UUID
	if p := l.ParentID(); p != nil {
		id := p.Bytes()
		parentID = &id
	}

	pos := l.Position()
	dims := l.Dimensions()
	return LocationDTO{
		ID:          l.ID().Bytes(),
		LayoutID:    l.LayoutID().Bytes(),
		ParentID:    parentID,
		Kind:        l.Kind().String(),
		Name:        l.Name(),
		Code:        l.Code(),
		X:           pos.X(),
		Y:           pos.Y(),
		Z:           pos.Z(),
		Width:       dims.Width(),
		Depth:       dims.Depth(),
		Height:      dims.Height(),
		MaxWeight:   l.Capacity().MaxWeight(),
		MaxItems:    l.Capacity().MaxItems(),
		Blocked:     l.IsBlocked(),
		BlockReason: l.BlockReason(),
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	layoutID, layoutErr := kernel.UUIDFromBytes(dto.LayoutID[:])
	kind, kindErr := location.KindFromString(dto.Kind)
	pos, posErr := kernel.NewPosition(dto.X, dto.Y, dto.Z)
	dims, dimsErr := kernel.NewDimensions(dto.Width, dto.Depth, dto.Height)
	capacity, capErr := location.NewCapacity(dto.MaxWeight, dto.MaxItems)
	if err := errors.Join(idErr, layoutErr, kindErr, posErr, dimsErr, capErr); err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		p, err := kernel.UUIDFromBytes(dto.ParentID[:])
		if err != nil {
			return nil, err
		}
		parentID = &p
	}

	return location.RestoreLocation(
		id, layoutID, kind, dto.Name, dto.Code, pos, dims, parentID, capacity, dto.Blocked, dto.BlockReason,
	)
}

func toDomainList(dtos []LocationDTO) ([]*location.Location, error) {
	locations := make([]*location.Location, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, nil
}

func idBytes(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}
