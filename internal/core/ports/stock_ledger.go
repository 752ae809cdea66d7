package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/stock"
)

// StockLedger is the read side of the external inventory ledger.
// The core never writes stock facts.
type StockLedger interface {
	// GetStock returns the quants per bin. Bins without stock map to an empty Stock.
	GetStock(ctx context.Context, binIDs []kernel.UUID) (map[kernel.UUID]stock.Stock, error)
}
