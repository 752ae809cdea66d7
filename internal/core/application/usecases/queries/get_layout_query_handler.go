package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/location"
)

// GetLayoutQueryHandler assembles the layout tree: zones in visiting order and
// the areas, shelves and bins grouped by kind.
type GetLayoutQueryHandler struct {
	readerFactory ReaderFactory
}

// NewGetLayoutQueryHandler creates the handler over a reader factory.
func NewGetLayoutQueryHandler(readerFactory ReaderFactory) GetLayoutQueryHandler {
	return GetLayoutQueryHandler{readerFactory: readerFactory}
}

// Handle fails with errs.ErrObjectNotFound for an unknown layout.
func (h GetLayoutQueryHandler) Handle(ctx context.Context, query GetLayoutQuery) (GetLayoutQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLayoutQueryResponse{}, err
	}

	reader := h.readerFactory.Create()

	floor, err := reader.LayoutRepository().Get(ctx, query.LayoutID())
	if err != nil {
		return GetLayoutQueryResponse{}, err
	}
	zones, err := reader.LayoutRepository().GetZones(ctx, floor.ID())
	if err != nil {
		return GetLayoutQueryResponse{}, err
	}
	nodes, err := reader.LocationRepository().GetByLayout(ctx, floor.ID())
	if err != nil {
		return GetLayoutQueryResponse{}, err
	}

	response := GetLayoutQueryResponse{
		ID:         floor.ID(),
		Name:       floor.Name(),
		Dimensions: floor.Dimensions(),
		Zones:      make([]ZoneView, 0, len(zones)),
		Areas:      make([]LocationView, 0),
		Shelves:    make([]LocationView, 0),
		Bins:       make([]LocationView, 0),
	}

	for _, z := range layout.SortBySequence(zones) {
		response.Zones = append(response.Zones, zoneView(z))
	}

	for _, n := range nodes {
		view := locationView(n)
		switch n.Kind() {
		case location.Area:
			response.Areas = append(response.Areas, view)
		case location.Shelf:
			response.Shelves = append(response.Shelves, view)
		case location.Bin:
			response.Bins = append(response.Bins, view)
		}
	}

	return response, nil
}

func zoneView(z *layout.Zone) ZoneView {
	minX, minY, _ := z.Footprint().Min()
	maxX, maxY, _ := z.Footprint().Max()
	origin, _ := kernel.NewPlanPosition(minX, minY)
	return ZoneView{
		ID:        z.ID(),
		Name:      z.Name(),
		Sequence:  z.Sequence(),
		Origin:    origin,
		Width:     maxX - minX,
		Depth:     maxY - minY,
		Reference: z.Reference(),
	}
}

func locationView(l *location.Location) LocationView {
	return LocationView{
		ID:         l.ID(),
		ParentID:   l.ParentID(),
		Name:       l.Name(),
		Code:       l.Code(),
		Position:   l.Position(),
		Dimensions: l.Dimensions(),
		Blocked:    l.IsBlocked(),
	}
}
