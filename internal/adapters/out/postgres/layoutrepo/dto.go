// Package layoutrepo persists warehouse layouts and their picking zones.
package layoutrepo

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"

	"github.com/google/uuid"
)

type LayoutDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Width     float64   `gorm:"not null"`
	Depth     float64   `gorm:"not null"`
	Height    float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (LayoutDTO) TableName() string {
	return "layouts"
}

// ZoneDTO stores the zone footprint as its origin corner plus extent.
type ZoneDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LayoutID   uuid.UUID `gorm:"type:uuid;not null;index:idx_zones_layout_sequence,priority:1"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Sequence   int       `gorm:"not null;index:idx_zones_layout_sequence,priority:2"`
	OriginX    float64   `gorm:"not null"`
	OriginY    float64   `gorm:"not null"`
	OriginZ    float64   `gorm:"not null"`
	Width      float64   `gorm:"not null"`
	Depth      float64   `gorm:"not null"`
	Height     float64   `gorm:"not null"`
	ReferenceX float64   `gorm:"not null"`
	ReferenceY float64   `gorm:"not null"`
	ReferenceZ float64   `gorm:"not null"`
}

func (ZoneDTO) TableName() string {
	return "zones"
}

func fromDomain(l *layout.Layout) LayoutDTO {
	dims := l.Dimensions()
	return LayoutDTO{
		ID:     l.ID().Bytes(),
		Name:   l.Name(),
		Width:  dims.Width(),
		Depth:  dims.Depth(),
		Height: dims.Height(),
	}
}

func toDomain(dto LayoutDTO) (*layout.Layout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	dims, err := kernel.NewDimensions(dto.Width, dto.Depth, dto.Height)
	if err != nil {
		return nil, err
	}
	return layout.NewLayout(id, dto.Name, dims)
}

func zoneFromDomain(z *layout.Zone) ZoneDTO {
	minX, minY, minZ := z.Footprint().Min()
	maxX, maxY, maxZ := z.Footprint().Max()
	ref := z.Reference()
	return ZoneDTO{
		ID:         z.ID().Bytes(),
		LayoutID:   z.LayoutID().Bytes(),
		Name:       z.Name(),
		Sequence:   z.Sequence(),
		OriginX:    minX,
		OriginY:    minY,
		OriginZ:    minZ,
		Width:      maxX - minX,
		Depth:      maxY - minY,
		Height:     maxZ - minZ,
		ReferenceX: ref.X(),
		ReferenceY: ref.Y(),
		ReferenceZ: ref.Z(),
	}
}

func zoneToDomain(dto ZoneDTO) (*layout.Zone, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	layoutID, layoutErr := kernel.UUIDFromBytes(dto.LayoutID[:])
	origin, originErr := kernel.NewPosition(dto.OriginX, dto.OriginY, dto.OriginZ)
	extent, extentErr := kernel.NewDimensions(dto.Width, dto.Depth, dto.Height)
	ref, refErr := kernel.NewPosition(dto.ReferenceX, dto.ReferenceY, dto.ReferenceZ)
	if err := errors.Join(idErr, layoutErr, originErr, extentErr, refErr); err != nil {
		return nil, err
	}
	return layout.NewZone(id, layoutID, dto.Name, dto.Sequence, origin, extent, ref)
}
