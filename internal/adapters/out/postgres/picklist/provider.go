// Package picklist reads the bins an outbound order needs from the picking
// system's order lines.
package picklist

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PickLineDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo  int       `gorm:"primaryKey;autoIncrement:false"`
	BinID   uuid.UUID `gorm:"type:uuid;not null"`
}

func (PickLineDTO) TableName() string {
	return "order_pick_lines"
}

// GormPickListProvider implements ports.PickListProvider using GORM.
type GormPickListProvider struct {
	db *gorm.DB
}

func NewGormPickListProvider(db *gorm.DB) *GormPickListProvider {
	return &GormPickListProvider{db: db}
}

// GetRequiredBins returns bins in line order. Duplicates are kept; the route
// planner collapses them.
func (p *GormPickListProvider) GetRequiredBins(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var lines []PickLineDTO
	if err := p.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("line_no").
		Find(&lines).Error; err != nil {
		return nil, err
	}

	bins := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		binID, err := kernel.UUIDFromBytes(line.BinID[:])
		if err != nil {
			return nil, err
		}
		bins = append(bins, binID)
	}
	return bins, nil
}
