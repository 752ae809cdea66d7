// Package queries contains read operations over the warehouse state.
// Handlers read through the same repository ports as the commands, outside
// any transaction, and shape the results into read models for the HTTP layer.
package queries

import "warehouse/internal/core/ports"

type (
	// Reader is a unit of work used only for reads: Begin is never called, so
	// every repository runs on the plain connection.
	Reader interface {
		LayoutRepository() ports.LayoutRepository
		LocationRepository() ports.LocationRepository
		StockLedger() ports.StockLedger
		PickRouteRepository() ports.PickRouteRepository
		MovementRepository() ports.MovementRepository
		SnapshotRepository() ports.SnapshotRepository
	}

	ReaderFactory interface {
		Create() Reader
	}
)
