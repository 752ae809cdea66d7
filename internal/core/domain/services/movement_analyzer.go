package services

import (
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"
)

// BinActivity is how often a bin appeared as source or destination.
type BinActivity struct {
	BinID kernel.UUID
	Count int
}

// MovementAnalytics aggregates a slice of the movement ledger.
type MovementAnalytics struct {
	TotalMovements int
	TotalDistance  float64
	AvgDistance    float64
	CountsByType   map[movement.Type]int
	BusiestBins    []BinActivity
}

// MovementAnalyzer summarises movements: totals, counts per type and the busiest bins.
type MovementAnalyzer struct{}

// NewMovementAnalyzer creates a stateless MovementAnalyzer.
func NewMovementAnalyzer() MovementAnalyzer {
	return MovementAnalyzer{}
}

// Analyze aggregates movements already filtered by layout and time range.
// Busiest bins rank by source+destination occurrences, descending, ties by
// bin id; limit <= 0 keeps every bin.
func (MovementAnalyzer) Analyze(movements []*movement.BinMovement, limit int) MovementAnalytics {
	result := MovementAnalytics{CountsByType: make(map[movement.Type]int, len(movement.AllTypes()))}
	activity := make(map[kernel.UUID]int)

	for _, m := range movements {
		result.TotalMovements++
		result.TotalDistance += m.Distance()
		result.CountsByType[m.Type()]++

		activity[m.DestinationBinID()]++
		if src := m.SourceBinID(); src != nil {
			activity[*src]++
		}
	}

	if result.TotalMovements > 0 {
		result.AvgDistance = result.TotalDistance / float64(result.TotalMovements)
	}

	result.BusiestBins = make([]BinActivity, 0, len(activity))
	for binID, n := range activity {
		result.BusiestBins = append(result.BusiestBins, BinActivity{BinID: binID, Count: n})
	}
	slices.SortFunc(result.BusiestBins, func(a, b BinActivity) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		if a.BinID.Less(b.BinID) {
			return -1
		}
		if b.BinID.Less(a.BinID) {
			return 1
		}
		return 0
	})
	if limit > 0 && len(result.BusiestBins) > limit {
		result.BusiestBins = result.BusiestBins[:limit]
	}

	return result
}
