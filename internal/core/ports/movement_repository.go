package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"
)

// MovementRepository is the append-only bin movement ledger.
type MovementRepository interface {
	Add(ctx context.Context, m *movement.BinMovement) error

	// Find returns movements of a layout that occurred in [from, to), oldest first.
	Find(ctx context.Context, layoutID kernel.UUID, from, to time.Time) ([]*movement.BinMovement, error)

	// LastPickTimes returns, for the bins that were ever picked from, the time of the latest pick.
	LastPickTimes(ctx context.Context, binIDs []kernel.UUID) (map[kernel.UUID]time.Time, error)

	// CountPicks returns how many picks were taken from a bin since the given time.
	CountPicks(ctx context.Context, binID kernel.UUID, since time.Time) (int, error)
}
