package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// lockedBins returns the ids of the bins among nodes that currently hold inventory.
func lockedBins(ctx context.Context, ledger ports.StockLedger, nodes []*location.Location) ([]kernel.UUID, error) {
	binIDs := make([]kernel.UUID, 0, len(nodes))
	for _, n := range nodes {
		if n.IsBin() {
			binIDs = append(binIDs, n.ID())
		}
	}
	if len(binIDs) == 0 {
		return nil, nil
	}

	content, err := ledger.GetStock(ctx, binIDs)
	if err != nil {
		return nil, err
	}

	engine := services.NewBinStateEngine()
	locked := make([]kernel.UUID, 0)
	for _, id := range binIDs {
		if engine.IsLocked(content[id]) {
			locked = append(locked, id)
		}
	}
	return locked, nil
}

func ids(nodes []*location.Location) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID())
	}
	return out
}

// parentOf loads the parent of a non-area node. A dangling parent reference
// is reported as a hierarchy violation.
func parentOf(ctx context.Context, repo ports.LocationRepository, node *location.Location) (*location.Location, error) {
	parentID := node.ParentID()
	if parentID == nil {
		return nil, nil
	}
	parent, err := repo.Get(ctx, *parentID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: parent %s of %s is missing", location.ErrInvalidHierarchy, *parentID, node.Code())
	}
	return parent, err
}
