package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained after Begin
// share its transaction; obtained without Begin they run in auto-commit mode.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active.
	Rollback(ctx context.Context) error

	LayoutRepository() LayoutRepository
	LocationRepository() LocationRepository
	PickRouteRepository() PickRouteRepository
	MovementRepository() MovementRepository
	SnapshotRepository() SnapshotRepository
	StockLedger() StockLedger
	PickListProvider() PickListProvider
}
