package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const DefaultHeatmapDays = 30

var ErrGetHeatmapQueryIsNotConstructed = errors.New(
	"GetHeatmapQuery must be created via NewGetHeatmapQuery constructor",
)

// GetHeatmapQuery counts movements per destination bin over the days ending
// with the UTC day of asOf. Zero days means DefaultHeatmapDays; a zero asOf
// means today.
type GetHeatmapQuery struct {
	layoutID kernel.UUID
	days     int
	day      time.Time

	guard guard.ConstructorGuard
}

func NewGetHeatmapQuery(layoutID kernel.UUID, days int, asOf time.Time) (GetHeatmapQuery, error) {
	if err := layoutID.Validate(); err != nil {
		return GetHeatmapQuery{}, err
	}
	if days == 0 {
		days = DefaultHeatmapDays
	}
	if days < 1 || days > analytics.MaxHeatmapDays {
		return GetHeatmapQuery{}, errs.NewValueIsOutOfRangeError("days", days, 1, analytics.MaxHeatmapDays)
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	return GetHeatmapQuery{
		layoutID: layoutID,
		days:     days,
		day:      analytics.Day(asOf),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetHeatmapQuery) Validate() error {
	return q.guard.Validate(ErrGetHeatmapQueryIsNotConstructed)
}

func (q GetHeatmapQuery) LayoutID() kernel.UUID { return q.layoutID }

func (q GetHeatmapQuery) Days() int { return q.days }

func (q GetHeatmapQuery) Day() time.Time { return q.day }

type GetHeatmapQueryResponse struct {
	LayoutID   kernel.UUID
	Days       int
	Data       map[kernel.UUID]int
	Statistics analytics.HeatmapStatistics
}
