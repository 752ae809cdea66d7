// Package ports defines the contracts between the warehouse core and its
// infrastructure: repositories for the aggregates the core owns, read-only
// views of external collaborators (inventory ledger, picking system) and the
// unit of work that scopes them to one transaction.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
)

// LayoutRepository persists layouts and their zones.
type LayoutRepository interface {
	Add(ctx context.Context, l *layout.Layout) error

	// Get returns errs.ErrObjectNotFound when the layout does not exist.
	Get(ctx context.Context, id kernel.UUID) (*layout.Layout, error)

	// GetAll returns every layout ordered by name. Used by the daily analytics job.
	GetAll(ctx context.Context) ([]*layout.Layout, error)

	AddZone(ctx context.Context, z *layout.Zone) error

	// GetZones returns the zones of a layout in visiting order.
	GetZones(ctx context.Context, layoutID kernel.UUID) ([]*layout.Zone, error)
}
