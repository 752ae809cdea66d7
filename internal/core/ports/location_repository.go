package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
)

// LocationRepository persists the Area → Shelf → Bin tree.
// Lookups of a single node return errs.ErrObjectNotFound when it is missing.
type LocationRepository interface {
	Add(ctx context.Context, l *location.Location) error

	// AddMany inserts nodes in one batch, e.g. a freshly generated shelf grid.
	AddMany(ctx context.Context, ls []*location.Location) error

	Update(ctx context.Context, l *location.Location) error

	// Delete removes the given nodes. Callers pass a node together with all of its descendants.
	Delete(ctx context.Context, ids []kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)

	// GetForUpdate loads a node and holds a row lock on it until the
	// transaction ends, serialising concurrent mutations of the same bin.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*location.Location, error)

	// GetMany returns the nodes that exist among ids; missing ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*location.Location, error)

	// GetDescendants returns every node below id, at any depth.
	GetDescendants(ctx context.Context, id kernel.UUID) ([]*location.Location, error)

	// GetByLayout returns the whole tree of a layout ordered by kind then code.
	GetByLayout(ctx context.Context, layoutID kernel.UUID) ([]*location.Location, error)

	// GetBinsByLayout returns the bins of a layout ordered by code.
	GetBinsByLayout(ctx context.Context, layoutID kernel.UUID) ([]*location.Location, error)
}
