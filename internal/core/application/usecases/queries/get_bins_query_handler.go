package queries

import (
	"context"

	"warehouse/internal/core/domain/services"
)

// GetBinsQueryHandler lists the bins of a layout with their derived status.
// Lists longer than the query limit are cut and flagged as truncated.
//
// Example:
//
//	handler := NewGetBinsQueryHandler(readerFactory)
//	query, _ := NewGetBinsQuery(layoutID, 0)
//	resp, err := handler.Handle(ctx, query)
//	if err == nil && resp.Truncated {
//	    log.Printf("Showing %d of %d bins", len(resp.Bins), resp.TotalCount)
//	}
type GetBinsQueryHandler struct {
	readerFactory ReaderFactory
	engine        services.BinStateEngine
}

// NewGetBinsQueryHandler creates the handler over a reader factory.
func NewGetBinsQueryHandler(readerFactory ReaderFactory) GetBinsQueryHandler {
	return GetBinsQueryHandler{readerFactory: readerFactory, engine: services.NewBinStateEngine()}
}

// Handle loads stock only for the bins it returns.
func (h GetBinsQueryHandler) Handle(ctx context.Context, query GetBinsQuery) (GetBinsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBinsQueryResponse{}, err
	}

	reader := h.readerFactory.Create()

	if _, err := reader.LayoutRepository().Get(ctx, query.LayoutID()); err != nil {
		return GetBinsQueryResponse{}, err
	}
	bins, err := reader.LocationRepository().GetBinsByLayout(ctx, query.LayoutID())
	if err != nil {
		return GetBinsQueryResponse{}, err
	}

	response := GetBinsQueryResponse{TotalCount: len(bins)}
	if len(bins) > query.Limit() {
		bins = bins[:query.Limit()]
		response.Truncated = true
	}

	content, err := reader.StockLedger().GetStock(ctx, binIDs(bins))
	if err != nil {
		return GetBinsQueryResponse{}, err
	}

	response.Bins = make([]BinView, 0, len(bins))
	for _, b := range bins {
		state := h.engine.Derive(b, content[b.ID()])
		response.Bins = append(response.Bins, BinView{
			ID:             b.ID(),
			Name:           b.Name(),
			Code:           b.Code(),
			Position:       b.Position(),
			Dimensions:     b.Dimensions(),
			Status:         state.Status,
			Locked:         state.Locked,
			Quantity:       state.Quantity,
			Weight:         state.Weight,
			UtilizationPct: state.UtilizationPct,
		})
	}

	return response, nil
}
