package queries

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
)

func binIDs(bins []*location.Location) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(bins))
	for _, b := range bins {
		out = append(out, b.ID())
	}
	return out
}
