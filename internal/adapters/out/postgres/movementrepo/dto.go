// Package movementrepo persists the append-only bin movement ledger.
package movementrepo

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BinMovementDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LayoutID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_bin_movements_layout_occurred,priority:1"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity    decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	SourceBinID *uuid.UUID      `gorm:"type:uuid;index:idx_bin_movements_source_type,priority:1"`
	DestBinID   uuid.UUID       `gorm:"type:uuid;not null"`
	Type        string          `gorm:"type:varchar(16);not null;index:idx_bin_movements_source_type,priority:2"`
	OccurredAt  time.Time       `gorm:"not null;index:idx_bin_movements_layout_occurred,priority:2;index:idx_bin_movements_source_type,priority:3"`
	Distance    float64         `gorm:"not null;default:0"`
	OrderRef    *uuid.UUID      `gorm:"type:uuid"`
}

func (BinMovementDTO) TableName() string {
	return "bin_movements"
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	b := id.Bytes()
	return &b
}

func optionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func fromDomain(m *movement.BinMovement) BinMovementDTO {
	return BinMovementDTO{
		ID:          m.ID().Bytes(),
		LayoutID:    m.LayoutID().Bytes(),
		ProductID:   m.ProductID().Bytes(),
		Quantity:    m.Quantity(),
		SourceBinID: optionalBytes(m.SourceBinID()),
		DestBinID:   m.DestinationBinID().Bytes(),
		Type:        m.Type().String(),
		OccurredAt:  m.OccurredAt(),
		Distance:    m.Distance(),
		OrderRef:    optionalBytes(m.OrderRef()),
	}
}

func toDomain(dto BinMovementDTO) (*movement.BinMovement, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	layoutID, layoutErr := kernel.UUIDFromBytes(dto.LayoutID[:])
	productID, productErr := kernel.UUIDFromBytes(dto.ProductID[:])
	destID, destErr := kernel.UUIDFromBytes(dto.DestBinID[:])
	sourceID, sourceErr := optionalID(dto.SourceBinID)
	orderRef, orderErr := optionalID(dto.OrderRef)
	kind, kindErr := movement.ParseType(dto.Type)
	if err := errors.Join(idErr, layoutErr, productErr, destErr, sourceErr, orderErr, kindErr); err != nil {
		return nil, err
	}

	return movement.RestoreBinMovement(
		id, layoutID, productID, dto.Quantity, sourceID, destID, kind, dto.OccurredAt, dto.Distance, orderRef,
	)
}
