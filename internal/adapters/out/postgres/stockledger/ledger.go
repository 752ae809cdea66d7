// Package stockledger reads inventory quants written by the inventory ledger.
// The warehouse service never writes this table.
package stockledger

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type QuantDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	BinID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null"`
	Lot        string          `gorm:"type:varchar(64);not null;default:''"`
	ExpiresAt  *time.Time      `gorm:"type:timestamptz"`
	Quantity   decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	UnitWeight decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0"`
}

func (QuantDTO) TableName() string {
	return "stock_quants"
}

func toDomain(dto QuantDTO) (stock.Quant, error) {
	binID, binErr := kernel.UUIDFromBytes(dto.BinID[:])
	productID, productErr := kernel.UUIDFromBytes(dto.ProductID[:])
	if err := errors.Join(binErr, productErr); err != nil {
		return stock.Quant{}, err
	}
	return stock.NewQuant(binID, productID, dto.Lot, dto.ExpiresAt, dto.Quantity, dto.UnitWeight)
}

// GormStockLedger implements ports.StockLedger using GORM.
type GormStockLedger struct {
	db *gorm.DB
}

func NewGormStockLedger(db *gorm.DB) *GormStockLedger {
	return &GormStockLedger{db: db}
}

// GetStock skips zero quantities; a bin whose quants are all zero reads as empty.
func (l *GormStockLedger) GetStock(ctx context.Context, binIDs []kernel.UUID) (map[kernel.UUID]stock.Stock, error) {
	result := make(map[kernel.UUID]stock.Stock, len(binIDs))
	if len(binIDs) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(binIDs))
	for _, id := range binIDs {
		result[id] = stock.Stock{}
		ids = append(ids, id.Bytes())
	}

	var dtos []QuantDTO
	if err := l.db.WithContext(ctx).
		Where("bin_id IN ? AND quantity > 0", ids).
		Order("bin_id, expires_at NULLS LAST, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		q, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result[q.BinID()] = append(result[q.BinID()], q)
	}
	return result, nil
}
