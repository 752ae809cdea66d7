package analytics

import (
	"errors"
	"maps"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const MaxHeatmapDays = 365

var ErrHeatmapSnapshotIsNotConstructed = errors.New("HeatmapSnapshot must be created via NewHeatmapSnapshot constructor")

// HeatmapStatistics summarises a heatmap. The "picks" here are inbound
// movements of every type keyed by destination bin, so TotalPicks is the sum of
// the heatmap counts. It is not MetricsSnapshot.TotalPicks, which counts pick
// movements only.
type HeatmapStatistics struct {
	// TotalPicks is the number of movements of any type into the layout's bins.
	TotalPicks int
	// MaxPicks is the highest count of a single bin.
	MaxPicks int
	// AvgPicks is taken over bins with at least one movement.
	AvgPicks float64
	Date     time.Time
}

// HeatmapSnapshot is the per-bin movement count of one layout over the
// trailing Days ending with Day.
type HeatmapSnapshot struct {
	id        kernel.UUID
	layoutID  kernel.UUID
	day       time.Time
	days      int
	counts    map[kernel.UUID]int
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewHeatmapSnapshot validates the window length and the counts. Zero counts
// are dropped so Counts only lists bins that saw movements.
func NewHeatmapSnapshot(
	id, layoutID kernel.UUID,
	day time.Time,
	days int,
	counts map[kernel.UUID]int,
	createdAt time.Time,
) (*HeatmapSnapshot, error) {
	if err := errors.Join(id.Validate(), layoutID.Validate()); err != nil {
		return nil, err
	}
	if days < 1 || days > MaxHeatmapDays {
		return nil, errs.NewValueIsOutOfRangeError("days", days, 1, MaxHeatmapDays)
	}

	cleaned := make(map[kernel.UUID]int, len(counts))
	for binID, n := range counts {
		if n < 0 {
			return nil, errs.NewValueIsOutOfRangeError("pick count", n, 0, "unbounded")
		}
		if n > 0 {
			cleaned[binID] = n
		}
	}

	return &HeatmapSnapshot{
		id:        id,
		layoutID:  layoutID,
		day:       Day(day),
		days:      days,
		counts:    cleaned,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (h *HeatmapSnapshot) Validate() error {
	if h == nil {
		return ErrHeatmapSnapshotIsNotConstructed
	}
	return h.guard.Validate(ErrHeatmapSnapshotIsNotConstructed)
}

func (h *HeatmapSnapshot) ID() kernel.UUID { return h.id }

func (h *HeatmapSnapshot) LayoutID() kernel.UUID { return h.layoutID }

func (h *HeatmapSnapshot) Day() time.Time { return h.day }

func (h *HeatmapSnapshot) Days() int { return h.days }

func (h *HeatmapSnapshot) CreatedAt() time.Time { return h.createdAt }

// Counts returns a copy of the bin → count map. Bins without movements are absent.
func (h *HeatmapSnapshot) Counts() map[kernel.UUID]int {
	return maps.Clone(h.counts)
}

// Statistics derives the totals from the counts on every call.
func (h *HeatmapSnapshot) Statistics() HeatmapStatistics {
	stats := HeatmapStatistics{Date: h.day}
	for _, n := range h.counts {
		stats.TotalPicks += n
		stats.MaxPicks = max(stats.MaxPicks, n)
	}
	if len(h.counts) > 0 {
		stats.AvgPicks = float64(stats.TotalPicks) / float64(len(h.counts))
	}
	return stats
}
