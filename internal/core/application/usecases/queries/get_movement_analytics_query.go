package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const (
	DefaultBusiestBins   = 10
	MaxBusiestBins       = 1000
	DefaultAnalyticsSpan = 30 * 24 * time.Hour
)

var ErrGetMovementAnalyticsQueryIsNotConstructed = errors.New(
	"GetMovementAnalyticsQuery must be created via NewGetMovementAnalyticsQuery constructor",
)

// GetMovementAnalyticsQuery aggregates the ledger of one layout over [from, to).
// A zero to means now; a zero from means DefaultAnalyticsSpan before to.
type GetMovementAnalyticsQuery struct {
	layoutID kernel.UUID
	from     time.Time
	to       time.Time
	limit    int

	guard guard.ConstructorGuard
}

func NewGetMovementAnalyticsQuery(layoutID kernel.UUID, from, to time.Time, limit int) (GetMovementAnalyticsQuery, error) {
	if err := layoutID.Validate(); err != nil {
		return GetMovementAnalyticsQuery{}, err
	}
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.Add(-DefaultAnalyticsSpan)
	}
	if !from.Before(to) {
		return GetMovementAnalyticsQuery{}, errs.NewValueIsInvalidError("from must be before to")
	}
	if limit == 0 {
		limit = DefaultBusiestBins
	}
	if limit < 1 || limit > MaxBusiestBins {
		return GetMovementAnalyticsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxBusiestBins)
	}

	return GetMovementAnalyticsQuery{
		layoutID: layoutID,
		from:     from.UTC(),
		to:       to.UTC(),
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetMovementAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetMovementAnalyticsQueryIsNotConstructed)
}

func (q GetMovementAnalyticsQuery) LayoutID() kernel.UUID { return q.layoutID }

func (q GetMovementAnalyticsQuery) From() time.Time { return q.from }

func (q GetMovementAnalyticsQuery) To() time.Time { return q.to }

func (q GetMovementAnalyticsQuery) Limit() int { return q.limit }

type GetMovementAnalyticsQueryResponse struct {
	From time.Time
	To   time.Time
	services.MovementAnalytics
}
