// Package commands contains business operations that modify warehouse state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load and lock what it mutates, apply domain rules, persist, commit.
// Any failure before Commit rolls the whole unit of work back.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces narrow the full ports.UnitOfWork to what each
// handler actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	LayoutRepoFactory interface {
		LayoutRepository() ports.LayoutRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	StockLedgerFactory interface {
		StockLedger() ports.StockLedger
	}

	PickListFactory interface {
		PickListProvider() ports.PickListProvider
	}

	PickRouteRepoFactory interface {
		PickRouteRepository() ports.PickRouteRepository
	}

	MovementRepoFactory interface {
		MovementRepository() ports.MovementRepository
	}

	SnapshotRepoFactory interface {
		SnapshotRepository() ports.SnapshotRepository
	}

	// LayoutUoW covers layout, zone and area creation.
	LayoutUoW interface {
		TxManager
		LayoutRepoFactory
		LocationRepoFactory
	}

	LayoutUoWFactory interface {
		Create() LayoutUoW
	}

	// HierarchyUoW covers shelf and bin mutations, which need stock facts to
	// decide whether a bin is locked.
	HierarchyUoW interface {
		TxManager
		LocationRepoFactory
		StockLedgerFactory
	}

	HierarchyUoWFactory interface {
		Create() HierarchyUoW
	}

	// RouteUoW covers route computation and storage.
	RouteUoW interface {
		TxManager
		LayoutRepoFactory
		LocationRepoFactory
		StockLedgerFactory
		PickListFactory
		PickRouteRepoFactory
		MovementRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// MovementUoW covers appending to the movement ledger.
	MovementUoW interface {
		TxManager
		LocationRepoFactory
		MovementRepoFactory
	}

	MovementUoWFactory interface {
		Create() MovementUoW
	}

	// AnalyticsUoW covers the daily snapshot generation, which reads every
	// other store of a layout.
	AnalyticsUoW interface {
		TxManager
		LayoutRepoFactory
		LocationRepoFactory
		StockLedgerFactory
		PickRouteRepoFactory
		MovementRepoFactory
		SnapshotRepoFactory
	}

	AnalyticsUoWFactory interface {
		Create() AnalyticsUoW
	}
)
