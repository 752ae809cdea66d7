package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetMetricsQueryIsNotConstructed = errors.New(
	"GetMetricsQuery must be created via NewGetMetricsQuery constructor",
)

// GetMetricsQuery returns the efficiency metrics of one layout for the UTC day
// of asOf (today when zero).
type GetMetricsQuery struct {
	layoutID kernel.UUID
	day      time.Time

	guard guard.ConstructorGuard
}

func NewGetMetricsQuery(layoutID kernel.UUID, asOf time.Time) (GetMetricsQuery, error) {
	if err := layoutID.Validate(); err != nil {
		return GetMetricsQuery{}, err
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}
	return GetMetricsQuery{layoutID: layoutID, day: analytics.Day(asOf), guard: guard.NewConstructorGuard()}, nil
}

func (q GetMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetMetricsQueryIsNotConstructed)
}

func (q GetMetricsQuery) LayoutID() kernel.UUID { return q.layoutID }

func (q GetMetricsQuery) Day() time.Time { return q.day }

// GetMetricsQueryResponse is the stored snapshot of the day, or a live
// computation when the daily job has not run yet (Live is true).
type GetMetricsQueryResponse struct {
	LayoutID   kernel.UUID
	Day        time.Time
	Inventory  analytics.InventoryMetrics
	Picking    analytics.PickingMetrics
	Efficiency analytics.Efficiency
	Live       bool
	CreatedAt  time.Time
}
