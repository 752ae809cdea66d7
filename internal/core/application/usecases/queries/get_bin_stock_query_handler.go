package queries

import (
	"context"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"
)

// GetBinStockQueryHandler reports the derived state of one bin together with
// its pick frequency over PickFrequencyWindow and the time it was last picked.
type GetBinStockQueryHandler struct {
	readerFactory ReaderFactory
	engine        services.BinStateEngine
}

// NewGetBinStockQueryHandler creates the handler over a reader factory.
func NewGetBinStockQueryHandler(readerFactory ReaderFactory) GetBinStockQueryHandler {
	return GetBinStockQueryHandler{readerFactory: readerFactory, engine: services.NewBinStateEngine()}
}

// Handle fails with location.ErrInvalidHierarchy when the id names an area or shelf.
func (h GetBinStockQueryHandler) Handle(ctx context.Context, query GetBinStockQuery) (GetBinStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBinStockQueryResponse{}, err
	}

	reader := h.readerFactory.Create()

	bin, err := reader.LocationRepository().Get(ctx, query.BinID())
	if err != nil {
		return GetBinStockQueryResponse{}, err
	}
	if !bin.IsBin() {
		return GetBinStockQueryResponse{}, fmt.Errorf("%w: %s is a %s, not a bin",
			location.ErrInvalidHierarchy, bin.Code(), bin.Kind())
	}

	ids := []kernel.UUID{bin.ID()}
	content, err := reader.StockLedger().GetStock(ctx, ids)
	if err != nil {
		return GetBinStockQueryResponse{}, err
	}
	movements := reader.MovementRepository()
	picks, err := movements.CountPicks(ctx, bin.ID(), query.AsOf().Add(-PickFrequencyWindow))
	if err != nil {
		return GetBinStockQueryResponse{}, err
	}
	lastPicks, err := movements.LastPickTimes(ctx, ids)
	if err != nil {
		return GetBinStockQueryResponse{}, err
	}

	quants := content[bin.ID()]
	state := h.engine.Derive(bin, quants)
	response := GetBinStockQueryResponse{
		BinID:            bin.ID(),
		Code:             bin.Code(),
		Status:           state.Status,
		Locked:           state.Locked,
		Quantity:         state.Quantity,
		Weight:           state.Weight,
		UtilizationPct:   state.UtilizationPct,
		PickFrequency30d: picks,
		Contents:         make([]QuantView, 0, len(quants)),
	}
	if last, ok := lastPicks[bin.ID()]; ok {
		response.LastPicked = &last
	}
	for _, q := range quants {
		response.Contents = append(response.Contents, QuantView{
			ProductID: q.ProductID(),
			Lot:       q.Lot(),
			ExpiresAt: q.ExpiresAt(),
			Quantity:  q.Quantity(),
			Weight:    q.Weight(),
		})
	}

	return response, nil
}
