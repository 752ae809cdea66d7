package http

import (
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/route"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Zone struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Sequence  int       `json:"sequence"`
	Origin    Point     `json:"origin"`
	Width     float64   `json:"width"`
	Depth     float64   `json:"depth"`
	Reference Point     `json:"reference"`
}

type Location struct {
	ID         uuid.UUID  `json:"id"`
	ParentID   *uuid.UUID `json:"parentId,omitempty"`
	Name       string     `json:"name"`
	Code       string     `json:"code"`
	Position   Point      `json:"position"`
	Dimensions Size       `json:"dimensions"`
	Blocked    bool       `json:"blocked,omitempty"`
}

type Layout struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Dimensions Size       `json:"dimensions"`
	Zones      []Zone     `json:"zones"`
	Areas      []Location `json:"areas"`
	Shelves    []Location `json:"shelves"`
	Bins       []Location `json:"bins"`
}

func layoutOf(r queries.GetLayoutQueryResponse) Layout {
	zones := make([]Zone, 0, len(r.Zones))
	for _, z := range r.Zones {
		zones = append(zones, Zone{
			ID:        idOf(z.ID),
			Name:      z.Name,
			Sequence:  z.Sequence,
			Origin:    pointOf(z.Origin),
			Width:     z.Width,
			Depth:     z.Depth,
			Reference: pointOf(z.Reference),
		})
	}

	return Layout{
		ID:         idOf(r.ID),
		Name:       r.Name,
		Dimensions: sizeOf(r.Dimensions),
		Zones:      zones,
		Areas:      locationsOf(r.Areas),
		Shelves:    locationsOf(r.Shelves),
		Bins:       locationsOf(r.Bins),
	}
}

func locationsOf(views []queries.LocationView) []Location {
	out := make([]Location, 0, len(views))
	for _, v := range views {
		out = append(out, Location{
			ID:         idOf(v.ID),
			ParentID:   optionalIDOf(v.ParentID),
			Name:       v.Name,
			Code:       v.Code,
			Position:   pointOf(v.Position),
			Dimensions: sizeOf(v.Dimensions),
			Blocked:    v.Blocked,
		})
	}
	return out
}

type Bin struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Code           string          `json:"code"`
	Position       Point           `json:"position"`
	Dimensions     Size            `json:"dimensions"`
	Status         string          `json:"status"`
	Locked         bool            `json:"locked"`
	Quantity       decimal.Decimal `json:"quantity"`
	Weight         decimal.Decimal `json:"weight"`
	UtilizationPct float64         `json:"utilizationPct"`
}

type Bins struct {
	Bins       []Bin `json:"bins"`
	TotalCount int   `json:"totalCount"`
	Truncated  bool  `json:"truncated"`
}

func binsOf(r queries.GetBinsQueryResponse) Bins {
	bins := make([]Bin, 0, len(r.Bins))
	for _, b := range r.Bins {
		bins = append(bins, Bin{
			ID:             idOf(b.ID),
			Name:           b.Name,
			Code:           b.Code,
			Position:       pointOf(b.Position),
			Dimensions:     sizeOf(b.Dimensions),
			Status:         b.Status.String(),
			Locked:         b.Locked,
			Quantity:       b.Quantity,
			Weight:         b.Weight,
			UtilizationPct: b.UtilizationPct,
		})
	}
	return Bins{Bins: bins, TotalCount: r.TotalCount, Truncated: r.Truncated}
}

type Quant struct {
	ProductID uuid.UUID       `json:"productId"`
	Lot       string          `json:"lot,omitempty"`
	ExpiresAt *time.Time      `json:"expiresAt,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	Weight    decimal.Decimal `json:"weight"`
}

type BinStock struct {
	BinID            uuid.UUID       `json:"binId"`
	Code             string          `json:"code"`
	Status           string          `json:"status"`
	Locked           bool            `json:"locked"`
	Quantity         decimal.Decimal `json:"quantity"`
	Weight           decimal.Decimal `json:"weight"`
	UtilizationPct   float64         `json:"utilizationPct"`
	PickFrequency30d int             `json:"pickFrequency30d"`
	LastPicked       *time.Time      `json:"lastPicked"`
	Contents         []Quant         `json:"contents"`
}

func binStockOf(r queries.GetBinStockQueryResponse) BinStock {
	contents := make([]Quant, 0, len(r.Contents))
	for _, q := range r.Contents {
		contents = append(contents, Quant{
			ProductID: idOf(q.ProductID),
			Lot:       q.Lot,
			ExpiresAt: q.ExpiresAt,
			Quantity:  q.Quantity,
			Weight:    q.Weight,
		})
	}

	return BinStock{
		BinID:            idOf(r.BinID),
		Code:             r.Code,
		Status:           r.Status.String(),
		Locked:           r.Locked,
		Quantity:         r.Quantity,
		Weight:           r.Weight,
		UtilizationPct:   r.UtilizationPct,
		PickFrequency30d: r.PickFrequency30d,
		LastPicked:       r.LastPicked,
		Contents:         contents,
	}
}

type HeatmapStatistics struct {
	TotalPicks int       `json:"totalPicks"`
	MaxPicks   int       `json:"maxPicks"`
	AvgPicks   float64   `json:"avgPicks"`
	Date       time.Time `json:"date"`
}

type Heatmap struct {
	LayoutID    uuid.UUID         `json:"layoutId"`
	Days        int               `json:"days"`
	HeatmapData map[string]int    `json:"heatmapData"`
	Statistics  HeatmapStatistics `json:"statistics"`
}

func heatmapOf(r queries.GetHeatmapQueryResponse) Heatmap {
	data := make(map[string]int, len(r.Data))
	for binID, n := range r.Data {
		data[binID.String()] = n
	}
	return Heatmap{
		LayoutID:    idOf(r.LayoutID),
		Days:        r.Days,
		HeatmapData: data,
		Statistics:  heatmapStatisticsOf(r.Statistics),
	}
}

func heatmapStatisticsOf(s analytics.HeatmapStatistics) HeatmapStatistics {
	return HeatmapStatistics{TotalPicks: s.TotalPicks, MaxPicks: s.MaxPicks, AvgPicks: s.AvgPicks, Date: s.Date}
}

type InventoryMetrics struct {
	TotalBins      int     `json:"totalBins"`
	EmptyBins      int     `json:"emptyBins"`
	AvailableBins  int     `json:"availableBins"`
	FullBins       int     `json:"fullBins"`
	BlockedBins    int     `json:"blockedBins"`
	TotalWeight    float64 `json:"totalWeight"`
	TotalMaxWeight float64 `json:"totalMaxWeight"`
	UtilizationPct float64 `json:"utilizationPct"`
}

type PickingMetrics struct {
	TotalPicks         int     `json:"totalPicks"`
	TotalDistance      float64 `json:"totalDistance"`
	RoutesComputed     int     `json:"routesComputed"`
	AvgPickTimeMinutes float64 `json:"avgPickTimeMinutes"`
}

type Efficiency struct {
	Score           int         `json:"score"`
	BottleneckZones []uuid.UUID `json:"bottleneckZones"`
}

type Metrics struct {
	LayoutID         uuid.UUID        `json:"layoutId"`
	Day              string           `json:"day"`
	InventoryMetrics InventoryMetrics `json:"inventoryMetrics"`
	PickingMetrics   PickingMetrics   `json:"pickingMetrics"`
	Efficiency       Efficiency       `json:"efficiency"`
	Live             bool             `json:"live"`
	CreatedAt        time.Time        `json:"createdAt"`
}

func metricsOf(r queries.GetMetricsQueryResponse) Metrics {
	inv := r.Inventory
	picking := r.Picking
	return Metrics{
		LayoutID: idOf(r.LayoutID),
		Day:      r.Day.Format(time.DateOnly),
		InventoryMetrics: InventoryMetrics{
			TotalBins:      inv.TotalBins,
			EmptyBins:      inv.EmptyBins,
			AvailableBins:  inv.AvailableBins,
			FullBins:       inv.FullBins,
			BlockedBins:    inv.BlockedBins,
			TotalWeight:    inv.TotalWeight,
			TotalMaxWeight: inv.TotalMaxWeight,
			UtilizationPct: inv.UtilizationPct,
		},
		PickingMetrics: PickingMetrics{
			TotalPicks:         picking.TotalPicks,
			TotalDistance:      picking.TotalDistance,
			RoutesComputed:     picking.RoutesComputed,
			AvgPickTimeMinutes: picking.AvgPickTimeMinutes,
		},
		Efficiency: Efficiency{
			Score:           r.Efficiency.Score,
			BottleneckZones: idsOf(r.Efficiency.BottleneckZones),
		},
		Live:      r.Live,
		CreatedAt: r.CreatedAt,
	}
}

type BinActivity struct {
	BinID uuid.UUID `json:"binId"`
	Count int       `json:"count"`
}

type MovementAnalytics struct {
	From           time.Time      `json:"from"`
	To             time.Time      `json:"to"`
	TotalMovements int            `json:"totalMovements"`
	TotalDistance  float64        `json:"totalDistance"`
	AvgDistance    float64        `json:"avgDistance"`
	CountsByType   map[string]int `json:"countsByType"`
	BusiestBins    []BinActivity  `json:"busiestBins"`
}

func movementAnalyticsOf(r queries.GetMovementAnalyticsQueryResponse) MovementAnalytics {
	byType := make(map[string]int, len(r.CountsByType))
	for t, n := range r.CountsByType {
		byType[t.String()] = n
	}
	busiest := make([]BinActivity, 0, len(r.BusiestBins))
	for _, b := range r.BusiestBins {
		busiest = append(busiest, BinActivity{BinID: idOf(b.BinID), Count: b.Count})
	}

	return MovementAnalytics{
		From:           r.From,
		To:             r.To,
		TotalMovements: r.TotalMovements,
		TotalDistance:  r.TotalDistance,
		AvgDistance:    r.AvgDistance,
		CountsByType:   byType,
		BusiestBins:    busiest,
	}
}

type Route struct {
	ID                   uuid.UUID   `json:"id"`
	OrderID              uuid.UUID   `json:"orderId"`
	LayoutID             uuid.UUID   `json:"layoutId"`
	Strategy             string      `json:"strategy"`
	Sequence             []uuid.UUID `json:"sequence"`
	TotalDistance        float64     `json:"totalDistance"`
	EstimatedTimeSeconds float64     `json:"estimatedTimeSeconds"`
	ComputedAt           time.Time   `json:"computedAt"`
}

func routeOf(r *route.PickRoute) Route {
	return Route{
		ID:                   idOf(r.ID()),
		OrderID:              idOf(r.OrderID()),
		LayoutID:             idOf(r.LayoutID()),
		Strategy:             r.Strategy().String(),
		Sequence:             idsOf(r.Sequence()),
		TotalDistance:        r.TotalDistance(),
		EstimatedTimeSeconds: r.EstimatedTime().Seconds(),
		ComputedAt:           r.ComputedAt(),
	}
}
