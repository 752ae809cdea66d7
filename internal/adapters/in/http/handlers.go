package http

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/route"
)

// CommandHandler is satisfied by every command handler that returns nothing but an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, command C) error
}

// Handler is satisfied by query handlers and by command handlers that return a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers wires the use cases the HTTP adapter exposes.
type Handlers struct {
	CreateLayout   CommandHandler[commands.CreateLayoutCommand]
	CreateZone     CommandHandler[commands.CreateZoneCommand]
	CreateArea     CommandHandler[commands.CreateAreaCommand]
	CreateShelf    Handler[commands.CreateShelfCommand, []kernel.UUID]
	CreateBin      CommandHandler[commands.CreateBinCommand]
	ResizeShelf    Handler[commands.ResizeShelfCommand, []kernel.UUID]
	RelocateBin    CommandHandler[commands.RelocateBinCommand]
	SetBinBlocked  CommandHandler[commands.SetBinBlockedCommand]
	DeleteLocation CommandHandler[commands.DeleteLocationCommand]
	RecordMovement CommandHandler[commands.RecordMovementCommand]
	OptimizeRoute  Handler[commands.OptimizeRouteCommand, *route.PickRoute]
	EnsureRoute    Handler[commands.EnsureRouteCommand, *route.PickRoute]

	GetLayout            Handler[queries.GetLayoutQuery, queries.GetLayoutQueryResponse]
	GetBins              Handler[queries.GetBinsQuery, queries.GetBinsQueryResponse]
	GetBinStock          Handler[queries.GetBinStockQuery, queries.GetBinStockQueryResponse]
	GetHeatmap           Handler[queries.GetHeatmapQuery, queries.GetHeatmapQueryResponse]
	GetMetrics           Handler[queries.GetMetricsQuery, queries.GetMetricsQueryResponse]
	GetMovementAnalytics Handler[queries.GetMovementAnalyticsQuery, queries.GetMovementAnalyticsQueryResponse]
}
