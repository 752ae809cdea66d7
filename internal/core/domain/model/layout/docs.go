// Package layout models a warehouse floor (Layout) and the picking zones laid
// over it (Zone). Locations reference their layout by id; zones are used by the
// zone routing strategy and by bottleneck detection.
package layout
