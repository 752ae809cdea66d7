package commands

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrGenerateDailyAnalyticsCommandIsNotConstructed = errors.New(
	"GenerateDailyAnalyticsCommand must be created via NewGenerateDailyAnalyticsCommand constructor",
)

// GenerateDailyAnalyticsCommand builds the heatmap and metrics snapshots of one
// layout for one UTC day. Running it again for the same day changes nothing.
type GenerateDailyAnalyticsCommand struct {
	layoutID    kernel.UUID
	day         time.Time
	heatmapDays int

	guard guard.ConstructorGuard
}

func NewGenerateDailyAnalyticsCommand(layoutID kernel.UUID, day time.Time, heatmapDays int) (GenerateDailyAnalyticsCommand, error) {
	if err := layoutID.Validate(); err != nil {
		return GenerateDailyAnalyticsCommand{}, err
	}
	if day.IsZero() {
		return GenerateDailyAnalyticsCommand{}, errs.NewValueIsRequiredError("day")
	}
	if heatmapDays < 1 || heatmapDays > analytics.MaxHeatmapDays {
		return GenerateDailyAnalyticsCommand{}, errs.NewValueIsOutOfRangeError("heatmapDays", heatmapDays, 1, analytics.MaxHeatmapDays)
	}

	return GenerateDailyAnalyticsCommand{
		layoutID:    layoutID,
		day:         analytics.Day(day),
		heatmapDays: heatmapDays,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c GenerateDailyAnalyticsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateDailyAnalyticsCommandIsNotConstructed)
}

func (c GenerateDailyAnalyticsCommand) LayoutID() kernel.UUID { return c.layoutID }

// Day is the UTC start of the day being summarised.
func (c GenerateDailyAnalyticsCommand) Day() time.Time { return c.day }

func (c GenerateDailyAnalyticsCommand) HeatmapDays() int { return c.heatmapDays }
