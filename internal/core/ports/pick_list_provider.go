package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
)

// PickListProvider is the read side of the external picking system:
// which bins an outbound order needs to visit.
type PickListProvider interface {
	// GetRequiredBins returns the bins in the order the picking system listed them.
	// An unknown order yields an empty list.
	GetRequiredBins(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error)
}
