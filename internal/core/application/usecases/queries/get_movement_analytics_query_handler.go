package queries

import (
	"context"

	"warehouse/internal/core/domain/services"
)

// GetMovementAnalyticsQueryHandler aggregates the movements of a layout between From and To.
type GetMovementAnalyticsQueryHandler struct {
	readerFactory ReaderFactory
	analyzer      services.MovementAnalyzer
}

// NewGetMovementAnalyticsQueryHandler creates the handler over a reader factory.
func NewGetMovementAnalyticsQueryHandler(readerFactory ReaderFactory) GetMovementAnalyticsQueryHandler {
	return GetMovementAnalyticsQueryHandler{readerFactory: readerFactory, analyzer: services.NewMovementAnalyzer()}
}

// Handle fails with errs.ErrObjectNotFound for an unknown layout.
func (h GetMovementAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetMovementAnalyticsQuery,
) (GetMovementAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMovementAnalyticsQueryResponse{}, err
	}

	reader := h.readerFactory.Create()

	if _, err := reader.LayoutRepository().Get(ctx, query.LayoutID()); err != nil {
		return GetMovementAnalyticsQueryResponse{}, err
	}
	movements, err := reader.MovementRepository().Find(ctx, query.LayoutID(), query.From(), query.To())
	if err != nil {
		return GetMovementAnalyticsQueryResponse{}, err
	}

	return GetMovementAnalyticsQueryResponse{
		From:              query.From(),
		To:                query.To(),
		MovementAnalytics: h.analyzer.Analyze(movements, query.Limit()),
	}, nil
}
